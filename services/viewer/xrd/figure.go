package xrd

import (
	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	// DefaultBackground is the per-pattern vertical offset before any user change
	DefaultBackground = 0.0
	// DefaultIntensity is the per-pattern scale before any user change
	DefaultIntensity = 100.0
)

var log = logger.GetOrCreate("xrd")

type figureGenerator struct {
	sigma float64
}

// NewFigureGenerator creates a generator smoothing every pattern with the provided sigma
func NewFigureGenerator(sigma float64) *figureGenerator {
	return &figureGenerator{
		sigma: sigma,
	}
}

// GenerateTraces builds one stacked trace per usable pattern, keeping the pattern order
func (fg *figureGenerator) GenerateTraces(settings common.FigureSettings, patterns []common.Pattern) []common.Trace {
	settings = NormalizeSettings(settings, len(patterns))

	traces := make([]common.Trace, 0, len(patterns))
	for idx, pattern := range patterns {
		angles, intensities, err := ParsePattern(pattern.Content)
		if err != nil {
			log.Debug("skipping pattern", "filename", pattern.Filename, "error", err)
			continue
		}

		x, y := filterRange(angles, intensities, settings.AngleMin, settings.AngleMax)
		if len(x) == 0 {
			log.Debug("skipping pattern without points in range", "filename", pattern.Filename)
			continue
		}

		y = normalize(GaussianFilter1D(y, fg.sigma))
		offset := settings.Backgrounds[idx] + float64(idx)*settings.GlobalSeparation
		for i := range y {
			y[i] = y[i]*settings.Intensities[idx] + offset
		}

		traces = append(traces, common.Trace{
			Name: pattern.Filename,
			X:    x,
			Y:    y,
		})
	}

	return traces
}

// NormalizeSettings resets the per-pattern controls to their defaults when their count does not
// match the number of patterns
func NormalizeSettings(settings common.FigureSettings, numPatterns int) common.FigureSettings {
	if len(settings.Backgrounds) != numPatterns {
		settings.Backgrounds = filled(numPatterns, DefaultBackground)
	}
	if len(settings.Intensities) != numPatterns {
		settings.Intensities = filled(numPatterns, DefaultIntensity)
	}

	return settings
}

// IsInterfaceNil returns true if the value under the interface is nil
func (fg *figureGenerator) IsInterfaceNil() bool {
	return fg == nil
}

func filterRange(angles []float64, intensities []float64, angleMin float64, angleMax float64) ([]float64, []float64) {
	x := make([]float64, 0, len(angles))
	y := make([]float64, 0, len(angles))
	for i, angle := range angles {
		if angle >= angleMin && angle <= angleMax {
			x = append(x, angle)
			y = append(y, intensities[i])
		}
	}

	return x, y
}

// normalize maps the values onto [0, 1]. A flat signal is only shifted to 0
func normalize(values []float64) []float64 {
	minValue, maxValue := values[0], values[0]
	for _, v := range values {
		minValue = min(minValue, v)
		maxValue = max(maxValue, v)
	}

	span := maxValue - minValue
	for i, v := range values {
		if span == 0 {
			values[i] = v - minValue
			continue
		}
		values[i] = (v - minValue) / span
	}

	return values
}

func filled(length int, value float64) []float64 {
	values := make([]float64, length)
	for i := range values {
		values[i] = value
	}

	return values
}
