package xrd

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const commentMarker = "#"

// DecodeDataURL extracts the text payload of a browser data URL (data:<type>;base64,<payload>)
func DecodeDataURL(contents string) (string, error) {
	_, payload, found := strings.Cut(contents, ",")
	if !found {
		return "", fmt.Errorf("%w: missing separator", ErrInvalidDataURL)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: payload is not UTF-8 text", ErrInvalidDataURL)
	}

	return string(decoded), nil
}

// ParsePattern reads whitespace separated columns and returns the first two as angle and intensity.
// Comments, blank lines and rows without two numeric columns are skipped
func ParsePattern(content string) ([]float64, []float64, error) {
	angles := make([]float64, 0)
	intensities := make([]float64, 0)

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), commentMarker)
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		angle, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		intensity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}

		angles = append(angles, angle)
		intensities = append(intensities, intensity)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(angles) == 0 {
		return nil, nil, ErrNoDataRows
	}

	return angles, intensities, nil
}
