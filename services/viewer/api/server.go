package api

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/storage"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/xrd"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	csvFilename       = "xrd_plot.csv"
	defaultUploadSize = 32 * 1024 * 1024
	plotlyCDNURL      = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

//go:embed web/index.html
var indexPage []byte

var log = logger.GetOrCreate("api")

type server struct {
	router         *gin.Engine
	httpServer     *http.Server
	storage        Storage
	generator      FigureGenerator
	defaultRange   common.AngleRange
	maxUploadBytes int64
	listenAddr     string
	plotlyBundle   string
	generalHandler func(http.Handler) http.Handler
	wg             sync.WaitGroup
}

// UploadedFile is a single file of the upload payload, as read by the browser
type UploadedFile struct {
	Filename string `json:"filename"`
	Contents string `json:"contents"`
}

// UploadPayload represents the incoming JSON body on POST /api/patterns
type UploadPayload struct {
	Files []UploadedFile `json:"files"`
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress  string
	Storage        Storage
	Generator      FigureGenerator
	DefaultRange   common.AngleRange
	MaxUploadBytes int64
	// PlotlyBundlePath points to a local plotly.min.js. When empty or unreadable the page loads it from the CDN
	PlotlyBundlePath string
	GeneralHandler   func(http.Handler) http.Handler
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Storage) {
		return nil, errors.New("storage is required")
	}
	if check.IfNil(args.Generator) {
		return nil, errors.New("figure generator is required")
	}
	if args.GeneralHandler == nil {
		return nil, errors.New("nil http handler")
	}
	if args.DefaultRange.Min >= args.DefaultRange.Max {
		return nil, errors.New("invalid default angle range")
	}

	maxUploadBytes := args.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultUploadSize
	}

	plotlyBundle := args.PlotlyBundlePath
	if len(plotlyBundle) > 0 {
		info, err := os.Stat(plotlyBundle)
		if err != nil || info.IsDir() {
			log.Warn("plotly bundle not usable, the page will load it from the CDN",
				"path", plotlyBundle, "cdn", plotlyCDNURL)
			plotlyBundle = ""
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())

	s := &server{
		router:         router,
		storage:        args.Storage,
		generator:      args.Generator,
		defaultRange:   args.DefaultRange,
		maxUploadBytes: maxUploadBytes,
		listenAddr:     args.ListenAddress,
		plotlyBundle:   plotlyBundle,
		generalHandler: args.GeneralHandler,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/assets/plotly.min.js", s.handlePlotlyBundle)

	api := s.router.Group("/api")
	{
		api.GET("/patterns", s.handleListPatterns)
		api.POST("/patterns", s.handleUpload)
		api.DELETE("/patterns", s.handleDeleteAllPatterns)
		api.DELETE("/patterns/:id", s.handleDeletePattern)

		api.POST("/figure", s.handleFigure)
		api.POST("/figure/csv", s.handleFigureCSV)

		api.GET("/controls/defaults", s.handleDefaultControls)
		api.POST("/controls/range", s.handleRange)
	}

	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "api route not found"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	})
}

// Start listens and serves connections
func (s *server) Start() {
	handler := s.generalHandler(s.router)

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: handler,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()
	return s.storage.Close()
}

// --- Handlers ---

func (s *server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s *server) handlePlotlyBundle(c *gin.Context) {
	if len(s.plotlyBundle) == 0 {
		c.Redirect(http.StatusFound, plotlyCDNURL)
		return
	}

	c.Header("Content-Type", "application/javascript")
	c.File(s.plotlyBundle)
}

func (s *server) handleListPatterns(c *gin.Context) {
	patterns, err := s.storage.ListPatterns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range patterns {
		patterns[i].Content = ""
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

func (s *server) handleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)

	var payload UploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files"})
		return
	}

	contents := make([]string, len(payload.Files))
	group := errgroup.Group{}
	for i, file := range payload.Files {
		group.Go(func() error {
			decoded, err := xrd.DecodeDataURL(file.Contents)
			if err != nil {
				return errors.New(file.Filename + ": " + err.Error())
			}
			contents[i] = decoded
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadedAt := time.Now().Unix()
	ctx := c.Request.Context()
	saved := make([]common.Pattern, 0, len(payload.Files))
	for i, file := range payload.Files {
		pattern, err := s.storage.SavePattern(ctx, file.Filename, contents[i], uploadedAt)
		if err != nil {
			log.Warn("failed to save pattern", "filename", file.Filename, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		pattern.Content = ""
		saved = append(saved, *pattern)
	}

	log.Debug("patterns uploaded", "sender", c.Request.RemoteAddr, "num files", len(saved))

	c.JSON(http.StatusOK, gin.H{"patterns": saved})
}

func (s *server) handleDeletePattern(c *gin.Context) {
	err := s.storage.DeletePattern(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrPatternNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pattern not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *server) handleDeleteAllPatterns(c *gin.Context) {
	err := s.storage.DeleteAllPatterns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *server) generateTraces(c *gin.Context) ([]common.Trace, bool) {
	var settings common.FigureSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return nil, false
	}

	patterns, err := s.storage.ListPatterns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	return s.generator.GenerateTraces(settings, patterns), true
}

func (s *server) handleFigure(c *gin.Context) {
	traces, ok := s.generateTraces(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"traces": traces})
}

func (s *server) handleFigureCSV(c *gin.Context) {
	traces, ok := s.generateTraces(c)
	if !ok {
		return
	}
	if len(traces) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing to export"})
		return
	}

	buff := &bytes.Buffer{}
	err := xrd.WriteCSV(buff, traces)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
	c.Data(http.StatusOK, "text/csv", buff.Bytes())
}

func (s *server) handleDefaultControls(c *gin.Context) {
	patterns, err := s.storage.ListPatterns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, xrd.DefaultSettings(s.defaultRange, len(patterns)))
}

// handleRange expects {"relayout": {...}, "angleMin": 10, "angleMax": 90}
func (s *server) handleRange(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || !gjson.ValidBytes(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	current := common.AngleRange{
		Min: int(gjson.GetBytes(body, "angleMin").Int()),
		Max: int(gjson.GetBytes(body, "angleMax").Int()),
	}
	relayout := gjson.GetBytes(body, "relayout")

	c.JSON(http.StatusOK, xrd.RangeFromRelayout([]byte(relayout.Raw), current, s.defaultRange))
}
