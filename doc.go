// Package algosts is a randomness-testing toolkit: a battery of
// statistical detectors that judge whether a bit sequence is
// indistinguishable from a random source.
//
// Each detector reduces the sequence to a test statistic and converts it
// to a p-value through the special functions in spfunc; the spectral
// detector additionally runs the sequence through the FFT engine in fft.
// Battery.Run executes all configured detectors concurrently and reports
// one Result per detector. A sequence passes a detector when its p-value
// is at or above the configured significance level.
package algosts
