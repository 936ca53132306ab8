// Command launcher is a developer harness for the plugin: it wires the real
// config, logger, client slot and image proxy, runs one query from the command
// line and prints the results as JSON. The production entry point is the host
// launcher driving internal/memo/delivery/plugin directly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"memos-launcher/config"
	"memos-launcher/internal/imageproxy"
	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo/delivery/plugin"
	"memos-launcher/pkg/log"
)

func main() {
	serve := flag.Bool("serve", false, "keep the image proxy running until interrupted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := plugin.New(logger, imageproxy.Config{
		CacheTTL:        cfg.Proxy.CacheTTL,
		CacheSize:       cfg.Proxy.CacheSize,
		FetchRatePerMin: cfg.Proxy.FetchRatePerMin,
	})

	host := &devHost{cfg: cfg}
	if err := p.Init(ctx, launcher.PluginInitParams{API: host}); err != nil {
		logger.Errorf(ctx, "init failed: %v", err)
		return
	}
	defer p.Unload(context.Background())

	q := queryFromArgs(flag.Args())
	results := p.Query(ctx, q)
	printResults(results)

	if *serve {
		logger.Info(ctx, "serving image proxy, Ctrl-C to stop")
		<-ctx.Done()
	}
}

// queryFromArgs builds a query: a leading "create" argument selects the
// create command, the rest is the search text.
func queryFromArgs(args []string) launcher.Query {
	q := launcher.Query{TriggerKeyword: "memos"}
	if len(args) > 0 && args[0] == "create" {
		q.Command = "create"
		args = args[1:]
	}
	q.Search = strings.Join(args, " ")
	q.RawQuery = strings.TrimSpace(q.TriggerKeyword + " " + q.Command + " " + q.Search)
	return q
}

func printResults(results []launcher.Result) {
	type printable struct {
		Title      string            `json:"title"`
		SubTitle   string            `json:"subtitle,omitempty"`
		Score      int64             `json:"score,omitempty"`
		Actions    []string          `json:"actions,omitempty"`
		Preview    string            `json:"preview,omitempty"`
		Properties map[string]string `json:"properties,omitempty"`
	}

	out := make([]printable, 0, len(results))
	for _, r := range results {
		p := printable{Title: r.Title, SubTitle: r.SubTitle, Score: r.Score}
		for _, a := range r.Actions {
			p.Actions = append(p.Actions, a.Name)
		}
		if r.Preview != nil {
			p.Preview = r.Preview.Data
			p.Properties = r.Preview.Properties
		}
		out = append(out, p)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// devHost is a minimal host API for command-line use: settings come from
// config, translations fall back to the key, notifications go to stdout.
type devHost struct {
	cfg *config.Config
}

func (h *devHost) Notify(ctx context.Context, message string) {
	fmt.Println("notify:", message)
}

func (h *devHost) GetSetting(ctx context.Context, key string) string {
	switch key {
	case launcher.SettingHost:
		return h.cfg.Memos.Host
	case launcher.SettingToken:
		return h.cfg.Memos.Token
	}
	return ""
}

func (h *devHost) OnSettingChanged(ctx context.Context, fn func(key, value string)) {}

func (h *devHost) GetTranslation(ctx context.Context, key string) string {
	if s, ok := devTranslations[key]; ok {
		return s
	}
	return key
}

func (h *devHost) RefreshQuery(ctx context.Context, preserveSelection bool) {}

func (h *devHost) CopyText(ctx context.Context, text string) {
	fmt.Println("copy:", text)
}

func (h *devHost) OpenURL(ctx context.Context, url string) {
	fmt.Println("open:", url)
}

var devTranslations = map[string]string{
	"unconfigured_title":       "Memos is not configured",
	"unconfigured_subtitle":    "Set the host and token in the plugin settings",
	"create_title":             "Create memo: %s",
	"create_subtitle":          "Save this text as a new memo",
	"create_help_title":        "Type the memo content",
	"create_help_subtitle":     "Everything after the create command becomes the memo",
	"create_example_title":     "Example: memos create Buy milk",
	"create_example_subtitle":  "Creates a private memo with the content \"Buy milk\"",
	"no_memos_title":           "No memos yet",
	"no_memos_subtitle":        "Use the create command to add one",
	"list_error_title":         "Could not load memos",
	"search_error_title":       "Search failed",
	"no_match_title":           "No memos match %q",
	"no_match_subtitle":        "Press Enter to create a memo from the search text",
	"action_create":            "Create",
	"action_open":              "Open",
	"action_copy":              "Copy",
	"action_edit":              "Edit",
	"action_delete":            "Delete",
	"edit_form_label":          "Content",
	"notify_created":           "Memo created",
	"notify_updated":           "Memo updated",
	"notify_deleted":           "Memo deleted",
	"preview_prop_tags":        "Tags",
	"preview_prop_created":     "Created",
	"preview_prop_attachments": "Attachments",
	"preview_prop_length":      "Characters",
}
