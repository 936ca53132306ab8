package content

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"memos-launcher/internal/model"
)

// PreviewMarkdown assembles the Markdown preview body for a memo: the
// tag-stripped content followed by one block per attachment. Image attachments
// become image references routed through the local proxy so the renderer can
// load them without the bearer token; other attachments contribute only a
// blank-line placeholder.
func PreviewMarkdown(m model.Memo, proxyPort int, urlFor func(model.Attachment) string) string {
	var sb strings.Builder
	sb.WriteString(RemoveTags(m.Content))

	for _, att := range m.Attachments {
		sb.WriteString("\n\n")
		if !att.IsImage() || proxyPort == 0 {
			continue
		}
		target := urlFor(att)
		if target == "" {
			continue
		}
		proxied := fmt.Sprintf("http://127.0.0.1:%d/?url=%s", proxyPort, url.QueryEscape(target))
		sb.WriteString(fmt.Sprintf("![%s](%s)", att.Filename, proxied))
	}

	return sb.String()
}

// SideProperty is one labeled value shown beside the preview. Label holds the
// translation key; the orchestrator localizes it before handing results out.
type SideProperty struct {
	Label string
	Value string
}

// Translation keys for side property labels.
const (
	PropTags        = "preview_prop_tags"
	PropCreated     = "preview_prop_created"
	PropAttachments = "preview_prop_attachments"
	PropLength      = "preview_prop_length"
)

// SideProperties returns the preview side properties for a memo, in display
// order. Tags, creation time and attachment count appear only when resolvable;
// the character count always does.
func SideProperties(m model.Memo) []SideProperty {
	var props []SideProperty

	if tags := ExtractTags(m.Content); len(tags) > 0 {
		props = append(props, SideProperty{Label: PropTags, Value: strings.Join(tags, ", ")})
	}
	if created := FormatCreateTime(m.CreateTime, m.CreatedTs); created != "" {
		props = append(props, SideProperty{Label: PropCreated, Value: created})
	}
	if n := len(m.Attachments); n > 0 {
		props = append(props, SideProperty{Label: PropAttachments, Value: fmt.Sprintf("%d", n)})
	}
	props = append(props, SideProperty{
		Label: PropLength,
		Value: fmt.Sprintf("%d", utf8.RuneCountInString(m.Content)),
	})

	return props
}
