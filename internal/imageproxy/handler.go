package imageproxy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memos-launcher/pkg/response"
)

const cacheControl = "public, max-age=3600"

// handleImage serves GET /?url={image URL}. Missing param or an unconfigured
// client answers 404; a failed upstream fetch answers 500 and is logged, never
// surfaced to the transport layer.
func (s *Service) handleImage(c *gin.Context) {
	ctx := c.Request.Context()

	imageURL := c.Query("url")
	fetcher := s.source()
	if imageURL == "" || fetcher == nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	if data, ok := s.cache.Get(imageURL); ok {
		c.Header("Cache-Control", cacheControl)
		c.Data(http.StatusOK, "image/png", data)
		return
	}

	if !s.limiter.Allow() {
		s.l.Warnf(ctx, "image proxy: upstream fetch budget exceeded for %s", imageURL)
		c.String(http.StatusInternalServerError, "Error fetching image")
		return
	}

	data, err := fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		s.l.Errorf(ctx, "image proxy: fetch %s failed: %v", imageURL, err)
		c.String(http.StatusInternalServerError, "Error fetching image")
		return
	}

	s.cache.Add(imageURL, data)
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, "image/png", data)
}

// healthCheck reports proxy liveness for local diagnostics.
func (s *Service) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "memos-launcher-image-proxy",
	})
}
