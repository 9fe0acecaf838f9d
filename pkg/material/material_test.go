package material

import "testing"

func TestPresets_Invariants(t *testing.T) {
	tests := []struct {
		name string
		mat  Material
	}{
		{"ivory", Ivory()},
		{"glass", Glass()},
		{"red rubber", RedRubber()},
		{"mirror", Mirror()},
		{"default", Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mat.RefractiveIndex < 1 {
				t.Errorf("Expected refractive index >= 1, got %f", tt.mat.RefractiveIndex)
			}
			for i, weight := range tt.mat.Albedo {
				if weight < 0 {
					t.Errorf("Expected non-negative albedo[%d], got %f", i, weight)
				}
			}
			if tt.mat.SpecularExponent < 0 {
				t.Errorf("Expected non-negative specular exponent, got %f", tt.mat.SpecularExponent)
			}
		})
	}
}

func TestGlass_Refracts(t *testing.T) {
	glass := Glass()
	if glass.RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %f", glass.RefractiveIndex)
	}
	if glass.Albedo[AlbedoRefraction] == 0 {
		t.Error("Expected glass to carry a refraction weight")
	}
}

func TestDefault_IsPurelyDiffuse(t *testing.T) {
	mat := Default()
	if mat.Albedo != [4]float64{1, 0, 0, 0} {
		t.Errorf("Expected albedo (1,0,0,0), got %v", mat.Albedo)
	}
}
