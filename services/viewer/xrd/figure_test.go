package xrd

import (
	"bytes"
	"testing"

	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureGenerator_GenerateTraces(t *testing.T) {
	t.Parallel()

	patterns := []common.Pattern{
		{Filename: "quartz.xy", Content: "5 9\n10 1\n20 3\n30 5\n95 7\n"},
		{Filename: "broken.xy", Content: "not a pattern"},
		{Filename: "flat.xy", Content: "10 4\n20 4\n"},
		{Filename: "out-of-range.xy", Content: "1 4\n2 4\n"},
	}

	t.Run("explicit controls", func(t *testing.T) {
		t.Parallel()

		fg := NewFigureGenerator(0.1)
		assert.False(t, fg.IsInterfaceNil())

		traces := fg.GenerateTraces(common.FigureSettings{
			AngleMin:         10,
			AngleMax:         90,
			GlobalSeparation: 2,
			Backgrounds:      []float64{1, 0, 0.5, 0},
			Intensities:      []float64{10, 100, 50, 100},
		}, patterns)

		require.Len(t, traces, 2)
		assert.Equal(t, "quartz.xy", traces[0].Name)
		assert.Equal(t, []float64{10, 20, 30}, traces[0].X)
		assert.InDeltaSlice(t, []float64{1, 6, 11}, traces[0].Y, 1e-12)

		// index 2 keeps its position in the stack even though index 1 was skipped
		assert.Equal(t, "flat.xy", traces[1].Name)
		assert.InDeltaSlice(t, []float64{4.5, 4.5}, traces[1].Y, 1e-12)
	})
	t.Run("mismatched controls fall back to defaults", func(t *testing.T) {
		t.Parallel()

		fg := NewFigureGenerator(0.1)
		traces := fg.GenerateTraces(common.FigureSettings{
			AngleMin:    10,
			AngleMax:    90,
			Backgrounds: []float64{5, 6},
			Intensities: []float64{1, 2},
		}, patterns[:1])

		require.Len(t, traces, 1)
		assert.InDeltaSlice(t, []float64{0, 50, 100}, traces[0].Y, 1e-12)
	})
	t.Run("no patterns", func(t *testing.T) {
		t.Parallel()

		fg := NewFigureGenerator(0.1)
		assert.Empty(t, fg.GenerateTraces(common.FigureSettings{AngleMin: 10, AngleMax: 90}, nil))
	})
}

func TestNormalizeSettings(t *testing.T) {
	t.Parallel()

	settings := NormalizeSettings(common.FigureSettings{
		Backgrounds: []float64{1, 2},
		Intensities: []float64{3},
	}, 2)

	assert.Equal(t, []float64{1, 2}, settings.Backgrounds)
	assert.Equal(t, []float64{100, 100}, settings.Intensities)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	buff := &bytes.Buffer{}
	err := WriteCSV(buff, []common.Trace{
		{Name: "quartz.xy", X: []float64{10, 20.5}, Y: []float64{1, 6}},
	})
	require.NoError(t, err)
	assert.Equal(t, "trace,angle,intensity\nquartz.xy,10,1\nquartz.xy,20.5,6\n", buff.String())
}
