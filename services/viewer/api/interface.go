package api

import (
	"context"

	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
)

// Storage defines the interface for persisting the uploaded patterns
type Storage interface {
	// SavePattern stores a new pattern at the end of the list
	SavePattern(ctx context.Context, filename string, content string, uploadedAt int64) (*common.Pattern, error)

	// ListPatterns returns all patterns in upload order
	ListPatterns(ctx context.Context) ([]common.Pattern, error)

	// DeletePattern removes a single pattern
	DeletePattern(ctx context.Context, id string) error

	// DeleteAllPatterns removes every pattern
	DeleteAllPatterns(ctx context.Context) error

	// Close shuts down the database connection
	Close() error

	IsInterfaceNil() bool
}

// FigureGenerator defines the component turning patterns into plot traces
type FigureGenerator interface {
	GenerateTraces(settings common.FigureSettings, patterns []common.Pattern) []common.Trace
	IsInterfaceNil() bool
}
