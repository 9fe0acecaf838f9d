package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

func TestSphere_SignedDistance(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -16), 2, material.Ivory())

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"outside on axis", core.NewVec3(0, 0, 0), 14},
		{"on surface", core.NewVec3(0, 0, -14), 0},
		{"inside", core.NewVec3(0, 0, -16), -2},
		{"outside off axis", core.NewVec3(0, 3, -16), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.SignedDistance(tt.point)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 2, material.Ivory())

	normal, err := sphere.NormalAt(core.NewVec3(3, 0, 0))
	if err != nil {
		t.Fatalf("Expected normal, got error %v", err)
	}
	if normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Expected normal (1,0,0), got %v", normal)
	}
}

func TestSphere_NormalAt_Degenerate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 2, material.Ivory())

	_, err := sphere.NormalAt(core.NewVec3(1, 0, 0))
	if !errors.Is(err, ErrDegenerateNormal) {
		t.Errorf("Expected ErrDegenerateNormal at the center, got %v", err)
	}
}

func TestSphere_Material(t *testing.T) {
	mat := material.Glass()
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	if got := sphere.Material(); got != mat {
		t.Errorf("Expected material %+v, got %+v", mat, got)
	}
}
