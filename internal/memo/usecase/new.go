package usecase

import (
	"context"
	"fmt"

	"memos-launcher/internal/imageproxy"
	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo/repository"
	pkgLog "memos-launcher/pkg/log"
)

// RepositorySource returns the current remote client, or nil while the plugin
// is unconfigured. Every operation reads it exactly once so a settings-driven
// client swap can never be observed half-applied.
type RepositorySource func() repository.Repository

type implUseCase struct {
	l     pkgLog.Logger
	host  launcher.API
	repo  RepositorySource
	proxy *imageproxy.Service
}

// New creates the query orchestrator. The host API is an explicit dependency,
// not ambient state, so tests can supply a stub.
func New(
	l pkgLog.Logger,
	host launcher.API,
	repo RepositorySource,
	proxy *imageproxy.Service,
) *implUseCase {
	return &implUseCase{
		l:     l,
		host:  host,
		repo:  repo,
		proxy: proxy,
	}
}

// t looks up a translated format string and applies args.
func (uc *implUseCase) t(ctx context.Context, key string, args ...any) string {
	format := uc.host.GetTranslation(ctx, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
