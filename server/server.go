// Package server exposes the pipeline to a dashboard UI as a small
// JSON API. Every request gets its own result set or strategy document;
// no state is shared across requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"command-center/internal/models"
	"command-center/market"
	"command-center/shared/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Scanner runs one market scan per request.
type Scanner interface {
	Scan(ctx context.Context, query string) (*models.ResultSet, error)
}

// StrategyGenerator produces one strategy document per request and
// never fails outright.
type StrategyGenerator interface {
	Generate(ctx context.Context, videoID, title string, tags []string) *models.StrategyDocument
}

type Server struct {
	scanner  Scanner
	engine   StrategyGenerator
	monitor  *monitoring.Monitor
	tagLimit int
}

// New wires the API. engine may be nil when no completion provider is
// configured; strategy requests then answer 503.
func New(scanner Scanner, engine StrategyGenerator, monitor *monitoring.Monitor) *Server {
	return &Server{
		scanner:  scanner,
		engine:   engine,
		monitor:  monitor,
		tagLimit: 30,
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default())

	r.GET("/health", s.handleHealth)
	r.GET("/status", s.handleStatus)

	api := r.Group("/api")
	api.POST("/scan", s.handleScan)
	api.POST("/strategy", s.handleStrategy)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("API server listening on :%d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type scanRequest struct {
	Query string `json:"query" binding:"required"`
}

type scanResponse struct {
	ScanID  string               `json:"scan_id"`
	Query   string               `json:"query"`
	Summary models.ScanSummary   `json:"summary"`
	Videos  []models.ScoredVideo `json:"videos"`
	TopTags []models.TagCount    `json:"top_tags"`
}

func (s *Server) handleScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	start := time.Now()
	rs, err := s.scanner.Scan(c.Request.Context(), req.Query)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(start))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	s.monitor.RecordSuccess(fmt.Sprintf("scanned %q: %d videos", req.Query, len(rs.Videos)), time.Since(start))

	c.JSON(http.StatusOK, scanResponse{
		ScanID:  uuid.NewString(),
		Query:   req.Query,
		Summary: market.Summarize(rs),
		Videos:  rs.Videos,
		TopTags: market.TopTags(rs, s.tagLimit),
	})
}

type strategyRequest struct {
	VideoID string   `json:"video_id" binding:"required"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
}

func (s *Server) handleStrategy(c *gin.Context) {
	if s.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "strategy engine not configured"})
		return
	}

	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}

	// Always 200: a failed generation is a displayable document with
	// source "error", not an API failure.
	doc := s.engine.Generate(c.Request.Context(), req.VideoID, req.Title, req.Tags)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.monitor.IsHealthy() {
		c.String(http.StatusOK, "OK - %s", s.monitor.GetStatusSummary())
		return
	}
	c.String(http.StatusServiceUnavailable, "Service unhealthy - %s", s.monitor.GetStatusSummary())
}

func (s *Server) handleStatus(c *gin.Context) {
	c.String(http.StatusOK, "%s", s.monitor.GetStatusSummary())
}
