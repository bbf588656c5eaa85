package testsCommon

import (
	"context"

	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
)

// StoreStub -
type StoreStub struct {
	SavePatternHandler       func(ctx context.Context, filename string, content string, uploadedAt int64) (*common.Pattern, error)
	ListPatternsHandler      func(ctx context.Context) ([]common.Pattern, error)
	DeletePatternHandler     func(ctx context.Context, id string) error
	DeleteAllPatternsHandler func(ctx context.Context) error
	CloseHandler             func() error
}

// SavePattern -
func (stub *StoreStub) SavePattern(ctx context.Context, filename string, content string, uploadedAt int64) (*common.Pattern, error) {
	if stub.SavePatternHandler != nil {
		return stub.SavePatternHandler(ctx, filename, content, uploadedAt)
	}

	return &common.Pattern{Filename: filename, Content: content, UploadedAt: uploadedAt}, nil
}

// ListPatterns -
func (stub *StoreStub) ListPatterns(ctx context.Context) ([]common.Pattern, error) {
	if stub.ListPatternsHandler != nil {
		return stub.ListPatternsHandler(ctx)
	}

	return make([]common.Pattern, 0), nil
}

// DeletePattern -
func (stub *StoreStub) DeletePattern(ctx context.Context, id string) error {
	if stub.DeletePatternHandler != nil {
		return stub.DeletePatternHandler(ctx, id)
	}

	return nil
}

// DeleteAllPatterns -
func (stub *StoreStub) DeleteAllPatterns(ctx context.Context) error {
	if stub.DeleteAllPatternsHandler != nil {
		return stub.DeleteAllPatternsHandler(ctx)
	}

	return nil
}

// Close -
func (stub *StoreStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *StoreStub) IsInterfaceNil() bool {
	return stub == nil
}
