package xrd

import (
	"math"
	"strconv"

	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	"github.com/tidwall/gjson"
)

const (
	autorangeKey  = `xaxis\.autorange`
	rangeStartKey = `xaxis\.range\[0\]`
	rangeEndKey   = `xaxis\.range\[1\]`
)

// RangeFromRelayout maps a plot relayout event onto the angle controls. Autorange restores the
// defaults, an explicit zoom truncates the new bounds to integers and anything else keeps the current range
func RangeFromRelayout(relayout []byte, current common.AngleRange, defaults common.AngleRange) common.AngleRange {
	if !gjson.ValidBytes(relayout) {
		return current
	}

	if gjson.GetBytes(relayout, autorangeKey).Exists() {
		return defaults
	}

	start := gjson.GetBytes(relayout, rangeStartKey)
	end := gjson.GetBytes(relayout, rangeEndKey)
	if !start.Exists() || !end.Exists() {
		return current
	}

	newMin, okMin := truncate(start)
	newMax, okMax := truncate(end)
	if !okMin || !okMax {
		return current
	}

	return common.AngleRange{
		Min: newMin,
		Max: newMax,
	}
}

// DefaultSettings returns the controls after a reset for the provided number of patterns
func DefaultSettings(defaults common.AngleRange, numPatterns int) common.FigureSettings {
	return common.FigureSettings{
		AngleMin:         float64(defaults.Min),
		AngleMax:         float64(defaults.Max),
		GlobalSeparation: 0,
		Backgrounds:      filled(numPatterns, DefaultBackground),
		Intensities:      filled(numPatterns, DefaultIntensity),
	}
}

func truncate(result gjson.Result) (int, bool) {
	var value float64
	switch result.Type {
	case gjson.Number:
		value = result.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(result.Str, 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return int(value), true
}
