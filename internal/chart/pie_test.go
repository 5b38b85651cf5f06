package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"teamfortasks/internal/fixtures"
)

func TestPieDemoData(t *testing.T) {
	arcs := Pie([]fixtures.PieSlice{
		{Name: "Pending", Value: 18},
		{Name: "To Verify", Value: 0},
		{Name: "Completed", Value: 3},
	}, nil, 70)

	require.Len(t, arcs, 3)
	require.Equal(t, []string{"Pending", "To Verify", "Completed"}, []string{arcs[0].Name, arcs[1].Name, arcs[2].Name})
	require.Equal(t, []float64{18, 0, 3}, []float64{arcs[0].Value, arcs[1].Value, arcs[2].Value})
	require.Equal(t, DefaultPalette, []string{arcs[0].Color, arcs[1].Color, arcs[2].Color})

	require.True(t, strings.HasPrefix(arcs[0].Path, "M70.00 70.00 L70.00 0.00 A70.00 70.00 0 1 1 "), arcs[0].Path)
	require.Empty(t, arcs[1].Path)
	require.Contains(t, arcs[2].Path, " 0 0 1 ")
	require.InDelta(t, 85.71, arcs[0].Percent, 0.01)
	require.InDelta(t, 14.29, arcs[2].Percent, 0.01)
}

func TestPieSingleSliceIsFullCircle(t *testing.T) {
	arcs := Pie([]fixtures.PieSlice{{Name: "Pending", Value: 4}, {Name: "Completed"}}, nil, 10)
	require.Equal(t, "M0.00 10.00 A10.00 10.00 0 1 1 20.00 10.00 A10.00 10.00 0 1 1 0.00 10.00 Z", arcs[0].Path)
	require.Empty(t, arcs[1].Path)
	require.InDelta(t, 100, arcs[0].Percent, 1e-9)
}

func TestPieAllZero(t *testing.T) {
	arcs := Pie([]fixtures.PieSlice{{Name: "a"}, {Name: "b"}}, []string{"#000"}, 10)
	for _, a := range arcs {
		require.Empty(t, a.Path)
		require.Equal(t, "#000", a.Color)
	}
}
