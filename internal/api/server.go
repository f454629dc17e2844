// Package api exposes the HTTP trigger surface: a root endpoint that kicks
// off a refresh run and a health check for the hosting platform.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jackpotiq/app"
	"jackpotiq/internal"
)

// Refresher triggers one refresh run.
type Refresher interface {
	Run(ctx context.Context) (*app.RefreshResult, error)
}

// Server wraps the gin router around a refresher.
type Server struct {
	engine    *gin.Engine
	refresher Refresher
	log       *internal.Logger
}

// NewServer builds the router. mode is the gin mode ("release" in
// production).
func NewServer(refresher Refresher, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	s := &Server{
		engine:    gin.Default(),
		refresher: refresher,
		log:       internal.DefaultLogger,
	}

	s.engine.GET("/", s.trigger)
	s.engine.POST("/", s.trigger)
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return s
}

// trigger runs a refresh synchronously and reports the outcome.
func (s *Server) trigger(c *gin.Context) {
	result, err := s.refresher.Run(c.Request.Context())
	if err != nil {
		s.log.Error("refresh failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Scrape and stats update completed successfully",
		"result":  result,
	})
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the given port until the listener fails.
func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}
