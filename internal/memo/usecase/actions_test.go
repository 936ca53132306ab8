package usecase_test

import (
	"context"
	"strings"
	"testing"

	"memos-launcher/internal/launcher"
	"memos-launcher/internal/model"
)

// queryOne runs an empty query over a single-memo list and returns its result.
func queryOne(t *testing.T, repo *fakeRepo) (launcher.Result, *mockHost) {
	t.Helper()
	if repo.listFunc == nil {
		repo.listFunc = func(page, pageSize int) ([]model.Memo, error) {
			return []model.Memo{{Name: "memos/m1", Content: "original content"}}, nil
		}
	}
	uc, host := newUC(repo)
	results := uc.Query(context.Background(), launcher.Query{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	return results[0], host
}

func findAction(t *testing.T, r launcher.Result, name string) launcher.Action {
	t.Helper()
	for _, a := range r.Actions {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("action %q not found in %+v", name, r.Actions)
	return launcher.Action{}
}

func TestOpenAction(t *testing.T) {
	r, host := queryOne(t, &fakeRepo{})
	trigger(findAction(t, r, "action_open"), nil)
	if len(host.opened) != 1 || host.opened[0] != "https://memos.test/m/m1" {
		t.Errorf("open must launch the memo web URL, got %v", host.opened)
	}
}

func TestCopyAction(t *testing.T) {
	r, host := queryOne(t, &fakeRepo{})
	trigger(findAction(t, r, "action_copy"), nil)
	if len(host.copied) != 1 || host.copied[0] != "original content" {
		t.Errorf("copy must put the raw content on the clipboard, got %v", host.copied)
	}
}

func TestEditAction(t *testing.T) {
	t.Run("Form Prefilled With Current Content", func(t *testing.T) {
		r, _ := queryOne(t, &fakeRepo{})
		edit := findAction(t, r, "action_edit")
		if edit.Form == nil || len(edit.Form.Fields) != 1 {
			t.Fatalf("edit must carry a single-field form, got %+v", edit.Form)
		}
		f := edit.Form.Fields[0]
		if f.DefaultValue != "original content" || !f.Multiline {
			t.Errorf("unexpected form field: %+v", f)
		}
	})

	t.Run("Unchanged Submission Is Noop", func(t *testing.T) {
		called := false
		repo := &fakeRepo{
			updateFunc: func(name, content string) model.APIResult {
				called = true
				return model.APIResult{Success: true}
			},
		}
		r, host := queryOne(t, repo)
		trigger(findAction(t, r, "action_edit"), map[string]string{"content": "original content"})
		if called {
			t.Error("unchanged content must not update remotely")
		}
		if len(host.notifications) != 0 {
			t.Error("validation no-ops are silent")
		}
	})

	t.Run("Empty Submission Is Noop", func(t *testing.T) {
		called := false
		repo := &fakeRepo{
			updateFunc: func(name, content string) model.APIResult {
				called = true
				return model.APIResult{Success: true}
			},
		}
		r, _ := queryOne(t, repo)
		trigger(findAction(t, r, "action_edit"), map[string]string{"content": "   "})
		if called {
			t.Error("empty content must not update remotely")
		}
	})

	t.Run("Changed Submission Updates And Refreshes", func(t *testing.T) {
		var gotName, gotContent string
		repo := &fakeRepo{
			updateFunc: func(name, content string) model.APIResult {
				gotName, gotContent = name, content
				return model.APIResult{Success: true}
			},
		}
		r, host := queryOne(t, repo)
		trigger(findAction(t, r, "action_edit"), map[string]string{"content": "rewritten"})
		if gotName != "memos/m1" || gotContent != "rewritten" {
			t.Errorf("unexpected update args: %q %q", gotName, gotContent)
		}
		if len(host.notifications) != 1 || host.notifications[0] != "notify_updated" {
			t.Errorf("expected update notification, got %v", host.notifications)
		}
		if len(host.refreshes) != 1 || !host.refreshes[0] {
			t.Errorf("edit must refresh preserving selection, got %v", host.refreshes)
		}
	})

	t.Run("Update Failure Notifies", func(t *testing.T) {
		repo := &fakeRepo{
			updateFunc: func(name, content string) model.APIResult {
				return model.APIResult{Error: "Update failed (HTTP 500): boom"}
			},
		}
		r, host := queryOne(t, repo)
		trigger(findAction(t, r, "action_edit"), map[string]string{"content": "rewritten"})
		if len(host.notifications) != 1 || !strings.Contains(host.notifications[0], "Update failed") {
			t.Errorf("failure must notify with the error text, got %v", host.notifications)
		}
		if len(host.refreshes) != 0 {
			t.Error("failed update must not refresh")
		}
	})
}

func TestDeleteAction(t *testing.T) {
	t.Run("Success Notifies And Refreshes", func(t *testing.T) {
		var deleted string
		repo := &fakeRepo{
			deleteFunc: func(name string) model.APIResult {
				deleted = name
				return model.APIResult{Success: true}
			},
		}
		r, host := queryOne(t, repo)
		trigger(findAction(t, r, "action_delete"), nil)
		if deleted != "memos/m1" {
			t.Errorf("unexpected delete target: %q", deleted)
		}
		if len(host.notifications) != 1 || host.notifications[0] != "notify_deleted" {
			t.Errorf("expected delete notification, got %v", host.notifications)
		}
		if len(host.refreshes) != 1 || !host.refreshes[0] {
			t.Errorf("delete must refresh preserving selection, got %v", host.refreshes)
		}
	})

	t.Run("Failure Logs Only", func(t *testing.T) {
		// Unlike every other mutating action, a failed delete never
		// interrupts the user with a notification.
		repo := &fakeRepo{
			deleteFunc: func(name string) model.APIResult {
				return model.APIResult{Error: "Delete failed (HTTP 404)"}
			},
		}
		r, host := queryOne(t, repo)
		trigger(findAction(t, r, "action_delete"), nil)
		if len(host.notifications) != 0 {
			t.Errorf("delete failure must stay quiet, got %v", host.notifications)
		}
		if len(host.refreshes) != 0 {
			t.Error("failed delete must not refresh")
		}
	})
}
