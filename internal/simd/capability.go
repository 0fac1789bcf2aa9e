package simd

import (
	"os"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the pure Go struct-of-four implementation.
	Generic ISA = iota
	// SSE2 represents the x86-64 baseline vector path.
	SSE2
	// SSE3 adds the horizontal-add dot product path.
	SSE3
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case SSE3:
		return "sse3"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "sse3":
		return SSE3, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if PGA_SIMD was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init).
	hasVecAsm bool
	hasSSE3   bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("PGA_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
			// Invalid override - fall through to auto-detection.
		}
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasVecAsm
	case SSE3:
		return hasVecAsm && hasSSE3
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for this build. SSE2 is
// architectural baseline on amd64, so no feature check is needed below
// SSE3; noasm builds and non-x86 platforms stay generic.
func selectBestISA() ISA {
	if !hasVecAsm {
		return Generic
	}
	if hasSSE3 {
		return SSE3
	}
	return SSE2
}

// ActiveISA returns the currently active ISA. Callers that want to
// record which implementation is in use can log this value.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if PGA_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE3 returns true if the x86-64 horizontal-add path is available.
func HasSSE3() bool {
	return hasSSE3
}
