package pga

import "github.com/hupe1980/go-pga/internal/simd"

// ActiveSIMD reports the name of the SIMD implementation selected at
// startup ("generic", "sse2" or "sse3"). Callers that want to record
// which path is in use can log this value.
func ActiveSIMD() string {
	return simd.ActiveISA().String()
}
