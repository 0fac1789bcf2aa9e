//go:build amd64 && !noasm

package simd

//go:noescape
func addPS(a, b, dst *Vec)

//go:noescape
func subPS(a, b, dst *Vec)

//go:noescape
func mulPS(a, b, dst *Vec)

//go:noescape
func scalePS(a *Vec, s float32, dst *Vec)

//go:noescape
func invScalePS(a *Vec, s float32, dst *Vec)

//go:noescape
func hiDPPS(a, b, dst *Vec)
