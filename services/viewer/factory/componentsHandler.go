package factory

import (
	"github.com/iulianpascalau/xrd-launcher/services/viewer/api"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/config"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/storage"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/xrd"
)

const bytesInMB = 1024 * 1024

type componentsHandler struct {
	store     api.Storage
	generator api.FigureGenerator
	server    Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath, cfg.RetentionSeconds)
	if err != nil {
		return nil, err
	}

	generator := xrd.NewFigureGenerator(cfg.Figure.SmoothingSigma)

	serverArgs := api.ArgsWebServer{
		ListenAddress: cfg.ListenAddress,
		Storage:       store,
		Generator:     generator,
		DefaultRange: common.AngleRange{
			Min: cfg.Figure.DefaultAngleMin,
			Max: cfg.Figure.DefaultAngleMax,
		},
		MaxUploadBytes:   int64(cfg.MaxUploadSizeMB) * bytesInMB,
		PlotlyBundlePath: cfg.PlotlyBundlePath,
		GeneralHandler:   api.CORSMiddleware,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &componentsHandler{
		store:     store,
		generator: generator,
		server:    server,
	}, nil
}

// GetStore returns the storage component
func (ch *componentsHandler) GetStore() api.Storage {
	return ch.store
}

// GetGenerator returns the figure generator component
func (ch *componentsHandler) GetGenerator() api.FigureGenerator {
	return ch.generator
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components. The server closes the storage
func (ch *componentsHandler) Close() {
	_ = ch.server.Close()
}
