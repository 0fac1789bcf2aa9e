package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which implementation is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("PGA_SIMD=%q\n", os.Getenv("PGA_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	if runtime.GOARCH == "amd64" {
		fmt.Printf("SSE3: %v\n", HasSSE3())
	}
	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
