package xrd

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
)

// WriteCSV writes the traces as trace,angle,intensity rows
func WriteCSV(w io.Writer, traces []common.Trace) error {
	writer := csv.NewWriter(w)
	err := writer.Write([]string{"trace", "angle", "intensity"})
	if err != nil {
		return err
	}

	for _, trace := range traces {
		for i := range trace.X {
			err = writer.Write([]string{
				trace.Name,
				strconv.FormatFloat(trace.X[i], 'g', -1, 64),
				strconv.FormatFloat(trace.Y[i], 'g', -1, 64),
			})
			if err != nil {
				return err
			}
		}
	}

	writer.Flush()

	return writer.Error()
}
