package pga_test

import (
	"fmt"

	"github.com/hupe1980/go-pga"
)

func ExampleTranslator_TransformPoint() {
	tr := pga.NewTranslator(2, 0, 0, 1)
	q := tr.TransformPoint(pga.NewPoint(1, 1, 1))

	fmt.Printf("(%.1f, %.1f, %.1f)\n", q.X(), q.Y(), q.Z())
	// Output:
	// (1.0, 1.0, 3.0)
}

func ExamplePlane_ReflectPoint() {
	mirror := pga.NewPlane(0, 0, 1, 0) // z = 0
	q := mirror.ReflectPoint(pga.NewPoint(1, 2, 3))

	fmt.Printf("(%.0f, %.0f, %.0f)\n", q.X(), q.Y(), q.Z())
	// Output:
	// (1, 2, -3)
}
