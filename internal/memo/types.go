package memo

import "encoding/json"

// ActionKind discriminates the typed action payloads carried on results.
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionOpen   ActionKind = "open"
	ActionCopy   ActionKind = "copy"
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// ActionPayload is the structured context attached to a result action. It
// carries exactly the data the action needs; callbacks decode and validate it
// before executing instead of closing over loose variables.
type ActionPayload struct {
	Kind     ActionKind `json:"kind"`
	MemoName string     `json:"memo_name,omitempty"`
	Content  string     `json:"content,omitempty"`
	URL      string     `json:"url,omitempty"`
}

// Encode serializes the payload for Action.ContextData.
func (p ActionPayload) Encode() string {
	raw, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(raw)
}

// DecodeActionPayload parses and validates an action payload.
func DecodeActionPayload(data string) (ActionPayload, error) {
	var p ActionPayload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return ActionPayload{}, ErrInvalidActionPayload
	}

	switch p.Kind {
	case ActionCreate:
		if p.Content == "" {
			return ActionPayload{}, ErrInvalidActionPayload
		}
	case ActionOpen:
		if p.URL == "" {
			return ActionPayload{}, ErrInvalidActionPayload
		}
	case ActionCopy:
		// Content may legitimately be empty.
	case ActionEdit, ActionDelete:
		if p.MemoName == "" {
			return ActionPayload{}, ErrInvalidActionPayload
		}
	default:
		return ActionPayload{}, ErrInvalidActionPayload
	}
	return p, nil
}
