package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"decarb_pathways/internal/models"
)

func TestEvalCurve_Interpolates(t *testing.T) {
	c := &models.Curve{
		X: []float64{0, 5, 10, 15, 20},
		Y: []float64{2.0, 2.5, 3.0, 3.2, 3.3},
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"exact point", 10, 3.0},
		{"midpoint", 2.5, 2.25},
		{"between upper points", 17.5, 3.25},
		{"lower boundary", 0, 2.0},
		{"upper boundary", 20, 3.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := evalCurve(c, tt.x)
			require.InDelta(t, tt.want, got, 1e-12)
			require.False(t, clamped, "in-domain query must not set the clamp flag")
		})
	}
}

func TestEvalCurve_ClampsOutsideDomain(t *testing.T) {
	c := &models.Curve{
		X: []float64{0, 5, 20},
		Y: []float64{2.0, 2.5, 3.4},
	}

	// Below the lowest tabulated point: same value as the boundary, flagged.
	got, clamped := evalCurve(c, -12)
	require.Equal(t, 2.0, got)
	require.True(t, clamped)

	// Above the highest tabulated point.
	got, clamped = evalCurve(c, 40)
	require.Equal(t, 3.4, got)
	require.True(t, clamped)
}

func TestEvalCurve_SortsUnorderedTable(t *testing.T) {
	// Same table as above, shuffled. Evaluation must not depend on input order.
	c := &models.Curve{
		X: []float64{20, 0, 5},
		Y: []float64{3.4, 2.0, 2.5},
	}
	got, clamped := evalCurve(c, 2.5)
	require.InDelta(t, 2.25, got, 1e-12)
	require.False(t, clamped)
}

func TestValidateCurve(t *testing.T) {
	tests := []struct {
		name    string
		curve   *models.Curve
		wantErr bool
	}{
		{"nil curve", nil, true},
		{"empty curve", &models.Curve{}, true},
		{"length mismatch", &models.Curve{X: []float64{0, 1}, Y: []float64{1}}, true},
		{"non-positive value", &models.Curve{X: []float64{0, 1}, Y: []float64{2, 0}}, true},
		{"valid", &models.Curve{X: []float64{0, 1}, Y: []float64{2, 3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCurve("test", tt.curve, true)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
