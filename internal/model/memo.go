package model

import (
	"encoding/json"
	"strings"
)

// Memo is a single note as returned by the Memos API. Memos are immutable once
// fetched; an edit is a new remote write, never an in-place mutation.
type Memo struct {
	Name        string       `json:"name"`    // opaque identifier, e.g. "memos/abc123"
	Content     string       `json:"content"` // raw Markdown, may embed #hashtags
	CreateTime  string       `json:"createTime,omitempty"`
	CreatedTs   string       `json:"createdTs,omitempty"` // older backends use this field name
	Attachments []Attachment `json:"attachments,omitempty"`
}

// UID returns the short uid from the "memos/{uid}" name format, or "" when the
// name does not follow it.
func (m Memo) UID() string {
	parts := strings.SplitN(m.Name, "/", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return ""
}

// Attachment is a file associated with a memo. ExternalLink, when set, takes
// precedence over any URL derived from Name/Filename.
type Attachment struct {
	Name         string      `json:"name"`
	Filename     string      `json:"filename"`
	Type         string      `json:"type"` // MIME type
	Size         json.Number `json:"size"` // backends send number or numeric string
	ExternalLink string      `json:"externalLink,omitempty"`
}

// IsImage reports whether the attachment is renderable as an inline image.
func (a Attachment) IsImage() bool {
	return strings.HasPrefix(a.Type, "image/")
}

// APIResult is the uniform outcome of any mutating or fetching remote call.
// Success=false always carries a non-empty Error; callers never infer failure
// from absent data.
type APIResult struct {
	Success bool
	Data    json.RawMessage
	Error   string
}
