//go:build amd64 && !noasm

package simd

func init() {
	if activeISA >= SSE2 {
		addImpl = addSSE
		subImpl = subSSE
		mulImpl = mulSSE
		scaleImpl = scaleSSE
		invScaleImpl = invScaleSSE
	}
	if activeISA >= SSE3 {
		hiDPBCImpl = hiDPBCSSE3
	}
}

func addSSE(a, b Vec) Vec {
	var dst Vec
	addPS(&a, &b, &dst)
	return dst
}

func subSSE(a, b Vec) Vec {
	var dst Vec
	subPS(&a, &b, &dst)
	return dst
}

func mulSSE(a, b Vec) Vec {
	var dst Vec
	mulPS(&a, &b, &dst)
	return dst
}

func scaleSSE(a Vec, s float32) Vec {
	var dst Vec
	scalePS(&a, s, &dst)
	return dst
}

func invScaleSSE(a Vec, s float32) Vec {
	var dst Vec
	invScalePS(&a, s, &dst)
	return dst
}

func hiDPBCSSE3(a, b Vec) Vec {
	var dst Vec
	hiDPPS(&a, &b, &dst)
	return dst
}
