package usecase

import (
	"context"

	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo"
	"memos-launcher/internal/memo/repository"
	"memos-launcher/internal/model"
	"memos-launcher/pkg/content"
)

// richResults maps memos to fully actionable results. The repository returns
// memos most recent first; scores decrease strictly by position so the host
// renders the same order deterministically.
func (uc *implUseCase) richResults(ctx context.Context, repo repository.Repository, memos []model.Memo) []launcher.Result {
	results := make([]launcher.Result, 0, len(memos))
	for i, m := range memos {
		r := uc.memoResult(ctx, repo, m)
		r.Score = int64(len(memos) - i)
		results = append(results, r)
	}
	return results
}

func (uc *implUseCase) memoResult(ctx context.Context, repo repository.Repository, m model.Memo) launcher.Result {
	var tails []launcher.Tail
	for _, tag := range content.ExtractTags(m.Content) {
		tails = append(tails, launcher.Tail{Type: "text", Text: "#" + tag})
		if len(tails) == 3 {
			break
		}
	}

	return launcher.Result{
		Title:    content.Title(m.Content),
		SubTitle: content.FormatCreateTime(m.CreateTime, m.CreatedTs),
		Icon:     iconApp,
		Tails:    tails,
		Preview:  uc.memoPreview(ctx, repo, m),
		Actions:  uc.memoActions(ctx, repo, m),
	}
}

func (uc *implUseCase) memoPreview(ctx context.Context, repo repository.Repository, m model.Memo) *launcher.Preview {
	props := make(map[string]string)
	for _, p := range content.SideProperties(m) {
		props[uc.t(ctx, p.Label)] = p.Value
	}

	return &launcher.Preview{
		Type:       launcher.PreviewTypeMarkdown,
		Data:       content.PreviewMarkdown(m, uc.proxy.Port(), repo.AttachmentURL),
		Properties: props,
	}
}

// memoActions attaches the four actions every rich result carries: open,
// copy, edit and delete, each with a typed payload.
func (uc *implUseCase) memoActions(ctx context.Context, repo repository.Repository, m model.Memo) []launcher.Action {
	actions := make([]launcher.Action, 0, 4)

	if webURL := repo.WebURL(m); webURL != "" {
		open := memo.ActionPayload{Kind: memo.ActionOpen, URL: webURL}
		actions = append(actions, launcher.Action{
			Name:        uc.t(ctx, i18nActionOpen),
			IsDefault:   true,
			ContextData: open.Encode(),
			Execute:     uc.executeOpen,
		})
	}

	copyPayload := memo.ActionPayload{Kind: memo.ActionCopy, Content: m.Content}
	actions = append(actions, launcher.Action{
		Name:        uc.t(ctx, i18nActionCopy),
		ContextData: copyPayload.Encode(),
		Execute:     uc.executeCopy,
	})

	edit := memo.ActionPayload{Kind: memo.ActionEdit, MemoName: m.Name, Content: m.Content}
	actions = append(actions, launcher.Action{
		Name:        uc.t(ctx, i18nActionEdit),
		ContextData: edit.Encode(),
		Form: &launcher.Form{
			Fields: []launcher.FormField{{
				Key:          editFormContentKey,
				Label:        uc.t(ctx, i18nEditFormLabel),
				DefaultValue: m.Content,
				Multiline:    true,
			}},
		},
		Execute: uc.executeEdit,
	})

	del := memo.ActionPayload{Kind: memo.ActionDelete, MemoName: m.Name}
	actions = append(actions, launcher.Action{
		Name:        uc.t(ctx, i18nActionDelete),
		ContextData: del.Encode(),
		Execute:     uc.executeDelete,
	})

	return actions
}
