package usecase_test

import (
	"context"

	"memos-launcher/internal/imageproxy"
	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo"
	"memos-launcher/internal/memo/repository"
	"memos-launcher/internal/memo/usecase"
	"memos-launcher/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockHost records every host API call. Translations echo the key so tests
// assert on keys, with explicit formats for the parameterized ones.
type mockHost struct {
	notifications []string
	copied        []string
	opened        []string
	refreshes     []bool // recorded preserveSelection flags
}

var mockFormats = map[string]string{
	"create_title":   "create_title: %s",
	"no_match_title": "no_match_title: %s",
}

func (h *mockHost) Notify(ctx context.Context, message string) {
	h.notifications = append(h.notifications, message)
}

func (h *mockHost) GetSetting(ctx context.Context, key string) string { return "" }

func (h *mockHost) OnSettingChanged(ctx context.Context, fn func(key, value string)) {}

func (h *mockHost) GetTranslation(ctx context.Context, key string) string {
	if f, ok := mockFormats[key]; ok {
		return f
	}
	return key
}

func (h *mockHost) RefreshQuery(ctx context.Context, preserveSelection bool) {
	h.refreshes = append(h.refreshes, preserveSelection)
}

func (h *mockHost) CopyText(ctx context.Context, text string) {
	h.copied = append(h.copied, text)
}

func (h *mockHost) OpenURL(ctx context.Context, url string) {
	h.opened = append(h.opened, url)
}

// fakeRepo is a func-field repository stub.
type fakeRepo struct {
	createFunc func(content, visibility string) model.APIResult
	updateFunc func(name, content string) model.APIResult
	deleteFunc func(name string) model.APIResult
	listFunc   func(page, pageSize int) ([]model.Memo, error)
	searchFunc func(term string) ([]model.Memo, error)
}

func (r *fakeRepo) CreateMemo(ctx context.Context, content, visibility string) model.APIResult {
	if r.createFunc != nil {
		return r.createFunc(content, visibility)
	}
	return model.APIResult{Success: true}
}

func (r *fakeRepo) UpdateMemo(ctx context.Context, name, content string) model.APIResult {
	if r.updateFunc != nil {
		return r.updateFunc(name, content)
	}
	return model.APIResult{Success: true}
}

func (r *fakeRepo) DeleteMemo(ctx context.Context, name string) model.APIResult {
	if r.deleteFunc != nil {
		return r.deleteFunc(name)
	}
	return model.APIResult{Success: true}
}

func (r *fakeRepo) ListMemos(ctx context.Context, page, pageSize int) ([]model.Memo, error) {
	if r.listFunc != nil {
		return r.listFunc(page, pageSize)
	}
	return nil, nil
}

func (r *fakeRepo) SearchMemos(ctx context.Context, term string) ([]model.Memo, error) {
	if r.searchFunc != nil {
		return r.searchFunc(term)
	}
	return nil, nil
}

func (r *fakeRepo) AttachmentURL(att model.Attachment) string {
	if att.ExternalLink != "" {
		return att.ExternalLink
	}
	if att.Name == "" || att.Filename == "" {
		return ""
	}
	return "https://memos.test/file/" + att.Name + "/" + att.Filename
}

func (r *fakeRepo) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return nil, nil
}

func (r *fakeRepo) WebURL(m model.Memo) string {
	if uid := m.UID(); uid != "" {
		return "https://memos.test/m/" + uid
	}
	return ""
}

// newUC wires an orchestrator over the given repo (nil means unconfigured).
func newUC(repo repository.Repository) (memo.UseCase, *mockHost) {
	host := &mockHost{}
	proxy := imageproxy.New(&mockLogger{}, func() imageproxy.Fetcher { return nil }, imageproxy.Config{})
	uc := usecase.New(&mockLogger{}, host, func() repository.Repository {
		if repo == nil {
			return nil
		}
		return repo
	}, proxy)
	return uc, host
}

// trigger runs an action the way the host would, handing back its payload.
func trigger(a launcher.Action, formValues map[string]string) {
	a.Execute(context.Background(), launcher.ActionContext{
		ContextData: a.ContextData,
		FormValues:  formValues,
	})
}
