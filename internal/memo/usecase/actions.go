package usecase

import (
	"context"
	"strings"

	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo"
)

// executeCreate creates a memo from the payload content. Success notifies and
// refreshes without preserving the selected index (the result set changes
// shape); failure notifies with the error text.
func (uc *implUseCase) executeCreate(ctx context.Context, ac launcher.ActionContext) {
	payload, err := memo.DecodeActionPayload(ac.ContextData)
	if err != nil || payload.Kind != memo.ActionCreate {
		uc.l.Errorf(ctx, "create action: %v", err)
		return
	}

	repo := uc.repo()
	if repo == nil {
		return
	}

	res := repo.CreateMemo(ctx, payload.Content, "")
	if !res.Success {
		uc.host.Notify(ctx, res.Error)
		return
	}
	uc.host.Notify(ctx, uc.t(ctx, i18nNotifyCreated))
	uc.host.RefreshQuery(ctx, false)
}

// executeOpen launches the memo's web URL in the default browser.
func (uc *implUseCase) executeOpen(ctx context.Context, ac launcher.ActionContext) {
	payload, err := memo.DecodeActionPayload(ac.ContextData)
	if err != nil || payload.Kind != memo.ActionOpen {
		uc.l.Errorf(ctx, "open action: %v", err)
		return
	}
	uc.host.OpenURL(ctx, payload.URL)
}

// executeCopy puts the raw memo content on the clipboard via the host.
func (uc *implUseCase) executeCopy(ctx context.Context, ac launcher.ActionContext) {
	payload, err := memo.DecodeActionPayload(ac.ContextData)
	if err != nil || payload.Kind != memo.ActionCopy {
		uc.l.Errorf(ctx, "copy action: %v", err)
		return
	}
	uc.host.CopyText(ctx, payload.Content)
}

// executeEdit applies the submitted form content. An empty or unchanged
// submission is a validation no-op, silently ignored.
func (uc *implUseCase) executeEdit(ctx context.Context, ac launcher.ActionContext) {
	payload, err := memo.DecodeActionPayload(ac.ContextData)
	if err != nil || payload.Kind != memo.ActionEdit {
		uc.l.Errorf(ctx, "edit action: %v", err)
		return
	}

	submitted := ac.FormValues[editFormContentKey]
	if strings.TrimSpace(submitted) == "" || submitted == payload.Content {
		return
	}

	repo := uc.repo()
	if repo == nil {
		return
	}

	res := repo.UpdateMemo(ctx, payload.MemoName, submitted)
	if !res.Success {
		uc.host.Notify(ctx, res.Error)
		return
	}
	uc.host.Notify(ctx, uc.t(ctx, i18nNotifyUpdated))
	uc.host.RefreshQuery(ctx, true)
}

// executeDelete deletes the memo. Failure is logged only, never surfaced as a
// notification — the one mutating path that stays quiet on error.
func (uc *implUseCase) executeDelete(ctx context.Context, ac launcher.ActionContext) {
	payload, err := memo.DecodeActionPayload(ac.ContextData)
	if err != nil || payload.Kind != memo.ActionDelete {
		uc.l.Errorf(ctx, "delete action: %v", err)
		return
	}

	repo := uc.repo()
	if repo == nil {
		return
	}

	res := repo.DeleteMemo(ctx, payload.MemoName)
	if !res.Success {
		uc.l.Errorf(ctx, "delete action: %s failed: %s", payload.MemoName, res.Error)
		return
	}
	uc.host.Notify(ctx, uc.t(ctx, i18nNotifyDeleted))
	uc.host.RefreshQuery(ctx, true)
}
