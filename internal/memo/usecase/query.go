package usecase

import (
	"context"
	"strings"

	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo"
	"memos-launcher/internal/memo/repository"
)

// Query selects the mode for one invocation and builds the ordered result
// list: unconfigured, create, list (empty search) or search.
func (uc *implUseCase) Query(ctx context.Context, q launcher.Query) []launcher.Result {
	repo := uc.repo()
	if repo == nil {
		return []launcher.Result{uc.unconfiguredResult(ctx)}
	}

	search := strings.TrimSpace(q.Search)

	if q.Command == commandCreate {
		return uc.createResults(ctx, search)
	}
	if search == "" {
		return uc.listResults(ctx, repo)
	}
	return uc.searchResults(ctx, repo, search)
}

func (uc *implUseCase) unconfiguredResult(ctx context.Context) launcher.Result {
	return launcher.Result{
		Title:    uc.t(ctx, i18nUnconfiguredTitle),
		SubTitle: uc.t(ctx, i18nUnconfiguredSubtitle),
		Icon:     iconWarning,
	}
}

// createResults handles the "create" command: one actionable result when the
// user typed content, guidance entries otherwise. No network call either way.
func (uc *implUseCase) createResults(ctx context.Context, search string) []launcher.Result {
	if search == "" {
		return []launcher.Result{
			{
				Title:    uc.t(ctx, i18nCreateHelpTitle),
				SubTitle: uc.t(ctx, i18nCreateHelpSubtitle),
				Icon:     iconApp,
			},
			{
				Title:    uc.t(ctx, i18nCreateExampleTitle),
				SubTitle: uc.t(ctx, i18nCreateExampleSub),
				Icon:     iconApp,
			},
		}
	}
	return []launcher.Result{uc.createOfferResult(ctx, search)}
}

// createOfferResult is a single result whose default action creates a memo
// with the given content.
func (uc *implUseCase) createOfferResult(ctx context.Context, content string) launcher.Result {
	payload := memo.ActionPayload{Kind: memo.ActionCreate, Content: content}
	return launcher.Result{
		Title:    uc.t(ctx, i18nCreateTitle, content),
		SubTitle: uc.t(ctx, i18nCreateSubtitle),
		Icon:     iconApp,
		Actions: []launcher.Action{
			{
				Name:        uc.t(ctx, i18nActionCreate),
				IsDefault:   true,
				ContextData: payload.Encode(),
				Execute:     uc.executeCreate,
			},
		},
	}
}

// listResults shows the most recent memos for an empty search.
func (uc *implUseCase) listResults(ctx context.Context, repo repository.Repository) []launcher.Result {
	memos, err := repo.ListMemos(ctx, 1, listPageSize)
	if err != nil {
		uc.l.Errorf(ctx, "query: list failed: %v", err)
		return []launcher.Result{uc.warningResult(ctx, i18nListErrorTitle, err.Error())}
	}
	if len(memos) == 0 {
		return []launcher.Result{{
			Title:    uc.t(ctx, i18nNoMemosTitle),
			SubTitle: uc.t(ctx, i18nNoMemosSubtitle),
			Icon:     iconApp,
		}}
	}
	return uc.richResults(ctx, repo, memos)
}

// searchResults filters memos by the term; no match offers to create a memo
// from the exact search text.
func (uc *implUseCase) searchResults(ctx context.Context, repo repository.Repository, term string) []launcher.Result {
	memos, err := repo.SearchMemos(ctx, term)
	if err != nil {
		uc.l.Errorf(ctx, "query: search %q failed: %v", term, err)
		return []launcher.Result{uc.warningResult(ctx, i18nSearchErrorTitle, err.Error())}
	}
	if len(memos) == 0 {
		offer := uc.createOfferResult(ctx, term)
		offer.Title = uc.t(ctx, i18nNoMatchTitle, term)
		offer.SubTitle = uc.t(ctx, i18nNoMatchSubtitle)
		return []launcher.Result{offer}
	}
	return uc.richResults(ctx, repo, memos)
}

// warningResult renders a read-path failure inline in the result list, so the
// user always sees something in the result area instead of a popup.
func (uc *implUseCase) warningResult(ctx context.Context, titleKey, detail string) launcher.Result {
	return launcher.Result{
		Title:    uc.t(ctx, titleKey),
		SubTitle: detail,
		Icon:     iconWarning,
	}
}
