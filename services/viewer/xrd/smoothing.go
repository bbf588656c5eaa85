package xrd

import "math"

const gaussianTruncate = 4.0

// GaussianFilter1D smooths the input with a normalized gaussian kernel of the given sigma,
// truncated at 4 sigma, reflecting the samples around the edges (d c b a | a b c d | d c b a)
func GaussianFilter1D(input []float64, sigma float64) []float64 {
	output := make([]float64, len(input))
	if len(input) == 0 {
		return output
	}

	weights := gaussianKernel(sigma)
	radius := len(weights) / 2
	for i := range input {
		sum := 0.0
		for k, weight := range weights {
			sum += weight * input[reflectIndex(i+k-radius, len(input))]
		}
		output[i] = sum
	}

	return output
}

func gaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}

	radius := int(gaussianTruncate*sigma + 0.5)
	weights := make([]float64, 2*radius+1)
	total := 0.0
	for i := range weights {
		x := float64(i - radius)
		weights[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}

	return weights
}

func reflectIndex(index int, length int) int {
	period := 2 * length
	index %= period
	if index < 0 {
		index += period
	}
	if index >= length {
		index = period - index - 1
	}

	return index
}
