package memo

import (
	"context"

	"memos-launcher/internal/launcher"
)

// UseCase turns one launcher query into the ordered result list handed back to
// the host renderer. The caller may discard the result of a superseded query;
// the orchestrator never assumes its output is consumed.
type UseCase interface {
	Query(ctx context.Context, q launcher.Query) []launcher.Result
}
