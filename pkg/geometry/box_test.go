package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

func TestBox_SignedDistance(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), material.Ivory())

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"outside facing +x", core.NewVec3(4, 0, 0), 3},
		{"on +y face", core.NewVec3(0, 2, 0), 0},
		{"inside center", core.NewVec3(0, 0, 0), -1},
		{"outside corner", core.NewVec3(2, 3, 4), math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := box.SignedDistance(tt.point)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestBox_NormalAt(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.Ivory())

	normal, err := box.NormalAt(core.NewVec3(1, 0, 0))
	if err != nil {
		t.Fatalf("Expected normal, got error %v", err)
	}
	if normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-6 {
		t.Errorf("Expected normal (1,0,0), got %v", normal)
	}
}

func TestBox_NormalAt_Degenerate(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.Ivory())

	// The field is flat at the exact center
	_, err := box.NormalAt(core.NewVec3(0, 0, 0))
	if !errors.Is(err, ErrDegenerateNormal) {
		t.Errorf("Expected ErrDegenerateNormal at the center, got %v", err)
	}
}
