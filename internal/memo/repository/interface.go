package repository

import (
	"context"

	"memos-launcher/internal/model"
)

// Repository is the remote note-service boundary consumed by the orchestrator.
// Mutating calls return the uniform APIResult shape and never fail with a Go
// error; read calls return a plain error the caller renders inline.
type Repository interface {
	// CreateMemo creates a memo with the given content and visibility
	// ("PRIVATE" when empty).
	CreateMemo(ctx context.Context, content, visibility string) model.APIResult
	// UpdateMemo rewrites a memo's content by name.
	UpdateMemo(ctx context.Context, name, content string) model.APIResult
	// DeleteMemo deletes a memo by name.
	DeleteMemo(ctx context.Context, name string) model.APIResult
	// ListMemos returns one page of memos, most recent first.
	ListMemos(ctx context.Context, page, pageSize int) ([]model.Memo, error)
	// SearchMemos filters the most recent memos by case-insensitive substring.
	SearchMemos(ctx context.Context, term string) ([]model.Memo, error)
	// AttachmentURL resolves the retrievable URL for an attachment, "" when
	// none is derivable.
	AttachmentURL(att model.Attachment) string
	// FetchImage retrieves image bytes through the authenticated client.
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
	// WebURL is the memo's deep link in the service web UI, "" when the memo
	// name carries no uid.
	WebURL(m model.Memo) string
}
