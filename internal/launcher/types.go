package launcher

import "context"

// Query is one invocation from the host launcher.
type Query struct {
	ID             string
	RawQuery       string
	TriggerKeyword string
	Command        string // e.g. "create"; empty for plain searches
	Search         string
}

// Icon points at an image the host can render next to a result.
type Icon struct {
	ImageType string // "relative", "absolute", "emoji"
	ImageData string
}

// Tail is a trailing text badge on a result row.
type Tail struct {
	Type string
	Text string
}

// PreviewType selects how the host renders Preview.Data.
type PreviewType string

const (
	PreviewTypeText     PreviewType = "text"
	PreviewTypeMarkdown PreviewType = "markdown"
)

// Preview is the side panel content for a result. Properties are labeled
// key-value pairs shown beside the rendered data.
type Preview struct {
	Type       PreviewType
	Data       string
	Properties map[string]string
}

// Result is a single actionable item returned to the host for one query.
// Higher Score ranks first.
type Result struct {
	Title    string
	SubTitle string
	Icon     Icon
	Score    int64
	Tails    []Tail
	Preview  *Preview
	Actions  []Action
}

// Action is a user-triggerable operation on a result. ContextData is an opaque
// payload the host hands back verbatim in the ActionContext when the user
// triggers the action.
type Action struct {
	Name        string
	IsDefault   bool
	Icon        *Icon
	ContextData string
	Form        *Form
	Execute     func(ctx context.Context, ac ActionContext)
}

// ActionContext is what the host passes to Action.Execute.
type ActionContext struct {
	ContextData string
	FormValues  map[string]string // populated when the action carried a Form
}

// Form describes a multi-field input flow presented by the host before the
// action callback runs.
type Form struct {
	Fields []FormField
}

// FormField is one input in a Form.
type FormField struct {
	Key          string
	Label        string
	DefaultValue string
	Multiline    bool
}
