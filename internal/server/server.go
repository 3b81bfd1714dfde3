package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-extractor/internal/export"
	"invoice-extractor/internal/extract"
)

// Server wires the extraction service and exporter behind a gin router.
type Server struct {
	svc            *extract.Service
	renderer       *export.Renderer
	logger         *slog.Logger
	maxUploadBytes int64
}

func New(svc *extract.Service, renderer *export.Renderer, maxUploadBytes int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 20 << 20
	}
	return &Server{
		svc:            svc,
		renderer:       renderer,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = s.maxUploadBytes

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/extract", s.handleExtract)

	return r
}
