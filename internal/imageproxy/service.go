// Package imageproxy runs the transient loopback HTTP server that fetches
// bearer-protected images on behalf of the preview renderer. The renderer
// cannot send the access token itself; this proxy is the only component that
// holds the token and still answers unauthenticated local requests.
package imageproxy

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "memos-launcher/pkg/log"
)

// Fetcher retrieves image bytes through an authenticated client.
type Fetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Source returns the current authenticated fetcher, or nil when the plugin is
// unconfigured. It is read once per request so an in-flight request never
// observes a half-swapped client.
type Source func() Fetcher

// Config tunes the proxy caches and limits.
type Config struct {
	CacheTTL        time.Duration // image byte cache TTL; matches the Cache-Control max-age
	CacheSize       int           // max cached images
	FetchRatePerMin int           // upstream fetch budget
}

// Service is the image proxy with two states: stopped and running. Start is
// idempotent while running; Stop while stopped is a no-op; a stopped service
// can be started again and binds a fresh ephemeral port.
type Service struct {
	l      pkgLog.Logger
	source Source
	engine *gin.Engine

	cache   *expirable.LRU[string, []byte]
	limiter *rate.Limiter

	mu   sync.Mutex
	srv  *http.Server
	port int
}

// New creates a stopped proxy service.
func New(l pkgLog.Logger, source Source, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 64
	}
	if cfg.FetchRatePerMin <= 0 {
		cfg.FetchRatePerMin = 120
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Service{
		l:       l,
		source:  source,
		cache:   expirable.NewLRU[string, []byte](cfg.CacheSize, nil, cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.FetchRatePerMin)/60.0), cfg.FetchRatePerMin/10+1),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/", s.handleImage)
	engine.GET("/health", s.healthCheck)
	s.engine = engine

	return s
}

// Start binds the proxy to a loopback-only OS-assigned port and returns it.
// When already running it returns the existing port without binding a second
// listener. A bind failure leaves the service stopped.
func (s *Service) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return s.port, nil
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to bind image proxy listener: %w", err)
	}

	srv := &http.Server{Handler: s.engine}
	s.srv = srv
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.l.Infof(ctx, "image proxy: listening on 127.0.0.1:%d", s.port)

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.l.Errorf(context.Background(), "image proxy: serve stopped: %v", err)
		}
	}()

	return s.port, nil
}

// Stop closes the server and clears the bound port. No-op when stopped.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return
	}
	if err := s.srv.Close(); err != nil {
		s.l.Warnf(ctx, "image proxy: close: %v", err)
	}
	s.srv = nil
	s.port = 0
	s.l.Info(ctx, "image proxy: stopped")
}

// Port returns the bound port, 0 when stopped.
func (s *Service) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}
