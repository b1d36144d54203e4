package stylespace

import (
	"strings"
	"testing"
)

// uniformCoordinate builds a coordinate with every axis at v.
func uniformCoordinate(v float64) Coordinate {
	c := make(Coordinate, NumAxes)
	for _, axis := range axisOrder {
		c[axis] = v
	}
	return c
}

func TestCoordinateValidate_Valid(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		if err := uniformCoordinate(v).Validate(); err != nil {
			t.Errorf("uniform coordinate at %v should be valid, got %v", v, err)
		}
	}
}

func TestCoordinateValidate_MissingAxis(t *testing.T) {
	c := uniformCoordinate(0.5)
	delete(c, AxisInteriority)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for 7-axis coordinate")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCoordinateValidate_UnknownAxis(t *testing.T) {
	c := uniformCoordinate(0.5)
	delete(c, AxisTemporalMode)
	c[Axis("melancholy")] = 0.5 // still 8 entries, one of them bogus
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for unknown axis")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCoordinateValidate_OutOfRange(t *testing.T) {
	for _, v := range []float64{-0.01, 1.01, 42.0} {
		c := uniformCoordinate(0.5)
		c[AxisSyntacticDensity] = v
		err := c.Validate()
		if err == nil {
			t.Errorf("value %v should be rejected", v)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("value %v: expected validation error, got %v", v, err)
		}
	}
}

func TestCoordinateValues_CanonicalOrder(t *testing.T) {
	c := uniformCoordinate(0)
	for i, axis := range axisOrder {
		c[axis] = float64(i) / 10
	}
	values := c.Values()
	if len(values) != NumAxes {
		t.Fatalf("expected %d values, got %d", NumAxes, len(values))
	}
	for i, v := range values {
		if want := float64(i) / 10; v != want {
			t.Errorf("values[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestParameterNames_Stable(t *testing.T) {
	names := ParameterNames()
	if len(names) != NumAxes {
		t.Fatalf("expected %d names, got %d", NumAxes, len(names))
	}
	if names[0] != AxisSyntacticDensity || names[NumAxes-1] != AxisTemporalMode {
		t.Errorf("unexpected axis order: %v", names)
	}
	// The returned slice is a copy; clobbering it must not affect a fresh call.
	names[0] = Axis("clobbered")
	if again := ParameterNames(); again[0] != AxisSyntacticDensity {
		t.Error("ParameterNames must return an independent copy")
	}
}

func TestBlendSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    BlendSpec
		wantErr bool
	}{
		{
			name: "valid two terms",
			spec: BlendSpec{{ID: "hemingway", Weight: 0.7}, {ID: "borges", Weight: 0.3}},
		},
		{
			name: "unnormalized weights are fine",
			spec: BlendSpec{{ID: "kafka", Weight: 3}, {ID: "didion", Weight: 1}},
		},
		{
			name:    "empty spec",
			spec:    BlendSpec{},
			wantErr: true,
		},
		{
			name:    "all zero weights",
			spec:    BlendSpec{{ID: "kafka", Weight: 0}, {ID: "borges", Weight: 0}},
			wantErr: true,
		},
		{
			name:    "negative weight",
			spec:    BlendSpec{{ID: "kafka", Weight: -0.5}, {ID: "borges", Weight: 1.5}},
			wantErr: true,
		},
		{
			name:    "duplicate id",
			spec:    BlendSpec{{ID: "kafka", Weight: 0.5}, {ID: "kafka", Weight: 0.5}},
			wantErr: true,
		},
		{
			name:    "empty id",
			spec:    BlendSpec{{ID: "", Weight: 1}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsValidation(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestModalityValidate(t *testing.T) {
	if err := ModalityText.Validate(); err != nil {
		t.Errorf("text modality should be valid: %v", err)
	}
	if err := ModalityImage.Validate(); err != nil {
		t.Errorf("image modality should be valid: %v", err)
	}
	if err := Modality("video").Validate(); err == nil {
		t.Error("unknown modality should be rejected")
	}
}

func TestNotFoundError_NamesKey(t *testing.T) {
	err := &NotFoundError{ID: "tolstoy"}
	if !strings.Contains(err.Error(), "tolstoy") {
		t.Errorf("error message should name the missing key: %q", err.Error())
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should match NotFoundError")
	}
}
