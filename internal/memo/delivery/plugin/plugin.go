// Package plugin is the host-facing delivery layer: it owns the plugin
// lifecycle (init, query, unload), the settings-driven client slot and the
// image proxy lifecycle.
package plugin

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"memos-launcher/internal/imageproxy"
	"memos-launcher/internal/launcher"
	"memos-launcher/internal/memo"
	"memos-launcher/internal/memo/repository"
	memosRepo "memos-launcher/internal/memo/repository/memos"
	"memos-launcher/internal/memo/usecase"
	pkgLog "memos-launcher/pkg/log"
)

// repoHolder wraps the repository so the whole client is swapped through one
// pointer: readers load it once per operation and can never observe a torn
// host/token pair.
type repoHolder struct {
	repo repository.Repository
}

// Plugin wires the orchestrator into the host launcher contract.
type Plugin struct {
	l     pkgLog.Logger
	proxy *imageproxy.Service

	host launcher.API
	uc   memo.UseCase
	slot atomic.Pointer[repoHolder]
}

// New creates an uninitialized plugin; Init must run before Query.
func New(l pkgLog.Logger, proxyCfg imageproxy.Config) *Plugin {
	p := &Plugin{l: l}
	p.proxy = imageproxy.New(l, p.currentFetcher, proxyCfg)
	return p
}

// Init captures the host API, builds the initial client from stored settings,
// subscribes to setting changes and starts the image proxy.
func (p *Plugin) Init(ctx context.Context, params launcher.PluginInitParams) error {
	p.host = params.API
	p.uc = usecase.New(p.l, p.host, p.currentRepo, p.proxy)

	p.rebuildClient(ctx)
	p.host.OnSettingChanged(ctx, func(key, value string) {
		if key != launcher.SettingHost && key != launcher.SettingToken {
			return
		}
		p.l.Infof(ctx, "plugin: setting %q changed, rebuilding client", key)
		p.rebuildClient(ctx)
	})

	if _, err := p.proxy.Start(ctx); err != nil {
		// The plugin still works without previews; keep going.
		p.l.Errorf(ctx, "plugin: image proxy failed to start: %v", err)
	}

	p.l.Info(ctx, "plugin: init finished")
	return nil
}

// Query handles one host query.
func (p *Plugin) Query(ctx context.Context, q launcher.Query) []launcher.Result {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	p.l.Debugf(ctx, "plugin: query %s command=%q search=%q", q.ID, q.Command, q.Search)
	return p.uc.Query(ctx, q)
}

// Unload tears the proxy down exactly once on plugin shutdown.
func (p *Plugin) Unload(ctx context.Context) {
	p.proxy.Stop(ctx)
}

// rebuildClient replaces the client slot from current settings. Either value
// being empty parks the plugin in the unconfigured steady state.
func (p *Plugin) rebuildClient(ctx context.Context) {
	host := p.host.GetSetting(ctx, launcher.SettingHost)
	token := p.host.GetSetting(ctx, launcher.SettingToken)
	if host == "" || token == "" {
		p.slot.Store(nil)
		return
	}

	client := memosRepo.NewClient(host, token)
	p.slot.Store(&repoHolder{repo: memosRepo.New(client, p.l)})
}

func (p *Plugin) currentRepo() repository.Repository {
	h := p.slot.Load()
	if h == nil {
		return nil
	}
	return h.repo
}

func (p *Plugin) currentFetcher() imageproxy.Fetcher {
	repo := p.currentRepo()
	if repo == nil {
		return nil
	}
	return repo
}
