package memos

import (
	"context"
	"fmt"

	"memos-launcher/internal/memo/repository"
	"memos-launcher/internal/model"
	pkgLog "memos-launcher/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the Memos-backed repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) CreateMemo(ctx context.Context, content, visibility string) model.APIResult {
	res := r.client.CreateMemo(ctx, content, visibility)
	if !res.Success {
		r.l.Errorf(ctx, "memos repository: create failed: %s", res.Error)
	}
	return res
}

func (r *implRepository) UpdateMemo(ctx context.Context, name, content string) model.APIResult {
	res := r.client.UpdateMemo(ctx, name, content)
	if !res.Success {
		r.l.Errorf(ctx, "memos repository: update %s failed: %s", name, res.Error)
	}
	return res
}

func (r *implRepository) DeleteMemo(ctx context.Context, name string) model.APIResult {
	res := r.client.DeleteMemo(ctx, name)
	if !res.Success {
		r.l.Errorf(ctx, "memos repository: delete %s failed: %s", name, res.Error)
	}
	return res
}

func (r *implRepository) ListMemos(ctx context.Context, page, pageSize int) ([]model.Memo, error) {
	return r.client.ListMemos(ctx, page, pageSize)
}

func (r *implRepository) SearchMemos(ctx context.Context, term string) ([]model.Memo, error) {
	return r.client.SearchMemos(ctx, term)
}

func (r *implRepository) AttachmentURL(att model.Attachment) string {
	return r.client.AttachmentURL(att)
}

func (r *implRepository) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return r.client.FetchImage(ctx, imageURL)
}

// WebURL builds the memo's deep link in the Memos web UI.
// Name format is "memos/{uid}" from the v1 API.
func (r *implRepository) WebURL(m model.Memo) string {
	uid := m.UID()
	if uid == "" {
		return ""
	}
	return fmt.Sprintf("%s/m/%s", r.client.Host(), uid)
}
