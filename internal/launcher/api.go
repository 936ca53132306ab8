package launcher

import "context"

// Setting keys exposed by the host settings store.
const (
	SettingHost  = "host"
	SettingToken = "token"
)

// PluginInitParams is what the host hands the plugin at init.
type PluginInitParams struct {
	API             API
	PluginDirectory string
}

// API is the capability surface injected by the host launcher at plugin init.
// It is a collaborator: the plugin consumes it, never implements it.
type API interface {
	// Notify shows a toast notification to the user.
	Notify(ctx context.Context, message string)
	// GetSetting returns the stored value for a setting key, "" when unset.
	GetSetting(ctx context.Context, key string) string
	// OnSettingChanged registers a callback fired with the changed key and
	// its new value.
	OnSettingChanged(ctx context.Context, fn func(key, value string))
	// GetTranslation returns the localized format string for a key.
	GetTranslation(ctx context.Context, key string) string
	// RefreshQuery asks the host to re-run the current query. When
	// preserveSelection is true the host keeps the selected result index.
	RefreshQuery(ctx context.Context, preserveSelection bool)
	// CopyText puts text on the system clipboard.
	CopyText(ctx context.Context, text string)
	// OpenURL opens a URL in the default browser.
	OpenURL(ctx context.Context, url string)
}
