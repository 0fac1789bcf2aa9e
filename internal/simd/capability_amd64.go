//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasVecAsm = true
	hasSSE3 = cpu.X86.HasSSE3
	initCapabilities()
}
