package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"memos-launcher/internal/model"
)

const (
	requestTimeout = 10 * time.Second

	// Error bodies embedded in result messages are truncated to this length.
	errorBodyLimit = 200

	// searchWindow caps the candidate set for client-side search: only the
	// 100 most recent memos are fetched before filtering, so a match older
	// than the window is never found. Carried over deliberately from the
	// original client.
	searchWindow = 100
)

// Client is the HTTP wrapper for the Memos REST API. Every request carries the
// bearer token, the memos.access-token cookie and a fixed 10s timeout.
type Client struct {
	host       string
	token      string
	httpClient *http.Client
}

// NewClient creates a Memos client for the given host (trailing slash
// stripped) and access token.
func NewClient(host, token string) *Client {
	return &Client{
		host:       strings.TrimSuffix(host, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Host returns the normalized base URL.
func (c *Client) Host() string {
	return c.host
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	target := path
	if !strings.Contains(path, "://") {
		target = c.host + path
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", fmt.Sprintf("memos.access-token=%s", c.token))
	return req, nil
}

// CreateMemo creates a memo via POST /api/v1/memos. Visibility defaults to
// "PRIVATE" when empty.
func (c *Client) CreateMemo(ctx context.Context, content, visibility string) model.APIResult {
	if visibility == "" {
		visibility = "PRIVATE"
	}

	body, err := json.Marshal(map[string]string{
		"content":    content,
		"visibility": visibility,
	})
	if err != nil {
		return model.APIResult{Error: unknownError(err)}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/memos", body)
	if err != nil {
		return model.APIResult{Error: unknownError(err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.APIResult{Error: networkError(err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return model.APIResult{Success: true, Data: raw}
	}
	return model.APIResult{
		Error: fmt.Sprintf("Create failed (HTTP %d): %s", resp.StatusCode, truncate(raw)),
	}
}

// UpdateMemo rewrites a memo's content via PATCH /api/v1/{name}.
func (c *Client) UpdateMemo(ctx context.Context, name, content string) model.APIResult {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return model.APIResult{Error: unknownError(err)}
	}

	req, err := c.newRequest(ctx, http.MethodPatch, "/api/v1/"+name, body)
	if err != nil {
		return model.APIResult{Error: unknownError(err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.APIResult{Error: networkError(err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK {
		return model.APIResult{Success: true, Data: raw}
	}
	return model.APIResult{
		Error: fmt.Sprintf("Update failed (HTTP %d): %s", resp.StatusCode, truncate(raw)),
	}
}

// DeleteMemo deletes a memo via DELETE /api/v1/{name}.
func (c *Client) DeleteMemo(ctx context.Context, name string) model.APIResult {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/v1/"+name, nil)
	if err != nil {
		return model.APIResult{Error: unknownError(err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.APIResult{Error: networkError(err)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return model.APIResult{Success: true}
	}
	return model.APIResult{Error: fmt.Sprintf("Delete failed (HTTP %d)", resp.StatusCode)}
}

// ListMemos fetches one page of memos via GET /api/v1/memos. The backend is
// allowed to answer with a bare array, a {memos: []} wrapper or a {data: []}
// wrapper; anything else yields an empty list and a diagnostic error naming
// the unexpected top-level keys.
func (c *Client) ListMemos(ctx context.Context, page, pageSize int) ([]model.Memo, error) {
	path := fmt.Sprintf("/api/v1/memos?page=%d&pageSize=%d", page, pageSize)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s", unknownError(err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s", networkError(err))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, truncate(raw))
	}

	memos, shape := decodeListPayload(raw)
	if shape == listShapeUnknown {
		return nil, fmt.Errorf("Invalid response format: %s", unknownKeys(raw))
	}
	return memos, nil
}

// SearchMemos filters the searchWindow most recent memos by case-insensitive
// substring match on content.
func (c *Client) SearchMemos(ctx context.Context, term string) ([]model.Memo, error) {
	memos, err := c.ListMemos(ctx, 1, searchWindow)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matches := make([]model.Memo, 0, len(memos))
	for _, m := range memos {
		if strings.Contains(strings.ToLower(m.Content), needle) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// AttachmentURL resolves the retrievable URL for an attachment. An external
// link wins verbatim; otherwise a URL is derivable only when both name and
// filename are non-empty.
func (c *Client) AttachmentURL(att model.Attachment) string {
	if att.ExternalLink != "" {
		return att.ExternalLink
	}
	if att.Name == "" || att.Filename == "" {
		return ""
	}
	return fmt.Sprintf("%s/file/%s/%s", c.host, att.Name, url.PathEscape(att.Filename))
}

// FetchImage retrieves raw image bytes with the authenticated client. Both
// relative paths and absolute URLs the backend recognizes are accepted.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch error %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ---- list payload decoding ----

type listShape int

const (
	listShapeArray listShape = iota
	listShapeMemos
	listShapeData
	listShapeUnknown
)

// decodeListPayload classifies the top-level payload shape and extracts the
// memo array when one is recognized.
func decodeListPayload(raw []byte) ([]model.Memo, listShape) {
	var direct []model.Memo
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, listShapeArray
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, listShapeUnknown
	}

	if inner, ok := wrapper["memos"]; ok {
		var memos []model.Memo
		if err := json.Unmarshal(inner, &memos); err == nil {
			return memos, listShapeMemos
		}
	}
	if inner, ok := wrapper["data"]; ok {
		var memos []model.Memo
		if err := json.Unmarshal(inner, &memos); err == nil {
			return memos, listShapeData
		}
	}
	return nil, listShapeUnknown
}

// unknownKeys names the top-level keys of an unrecognized payload, sorted for
// deterministic diagnostics.
func unknownKeys(raw []byte) string {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return "not a JSON object"
	}
	keys := make([]string, 0, len(wrapper))
	for k := range wrapper {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

// ---- error taxonomy ----

// networkError covers requests that were sent but got no response: timeouts,
// DNS failures, refused connections.
func networkError(err error) string {
	return fmt.Sprintf("Network error: %v", err)
}

// unknownError covers failures before a request could be issued.
func unknownError(err error) string {
	return fmt.Sprintf("Unknown error: %v", err)
}

func truncate(raw []byte) string {
	s := string(raw)
	if len(s) > errorBodyLimit {
		return s[:errorBodyLimit]
	}
	return s
}
