// Package cpu reports the processor features relevant to transform kernel
// selection.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to FFT kernel selection.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// HasVectorUnit reports whether a 4-lane batched butterfly pass is worth
// running on this processor.
func (f Features) HasVectorUnit() bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasSSE2 || f.HasAVX2 || f.HasAVX512 || f.HasNEON
}
