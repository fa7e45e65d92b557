// Package fft implements the multi-algorithm spectral engine used by the
// spectral randomness detector.
//
// Transform selects an algorithm from the buffer length alone: an O(n²)
// direct summation for small or awkward sizes, iterative radix-2 and
// radix-4 Cooley-Tukey transforms for power-of-two and power-of-four
// sizes, a fork-join recursive path for large power-of-two sizes, and a
// chunked strategy that bounds peak memory for huge buffers. Every path
// computes the same mathematical operation as DirectTransform; the direct
// transform is the correctness oracle for all of them.
//
// RealSpectrum adapts the complex engine to real-valued signals, returning
// the non-redundant half of the spectrum together with its magnitudes.
package fft
