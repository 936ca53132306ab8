package imageproxy_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"memos-launcher/internal/imageproxy"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type fakeFetcher struct {
	calls     atomic.Int64
	fetchFunc func(imageURL string) ([]byte, error)
}

func (f *fakeFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	f.calls.Add(1)
	return f.fetchFunc(imageURL)
}

func get(t *testing.T, port int, rawQuery string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/?%s", port, rawQuery))
	if err != nil {
		t.Fatalf("proxy request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body
}

func TestStartStopLifecycle(t *testing.T) {
	svc := imageproxy.New(nopLogger{}, func() imageproxy.Fetcher { return nil }, imageproxy.Config{})
	ctx := context.Background()

	t.Run("Stop While Stopped Is Noop", func(t *testing.T) {
		svc.Stop(ctx)
		if svc.Port() != 0 {
			t.Errorf("stopped service must report port 0")
		}
	})

	t.Run("Start Is Idempotent", func(t *testing.T) {
		first, err := svc.Start(ctx)
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		if first == 0 {
			t.Fatal("expected OS-assigned port")
		}
		second, err := svc.Start(ctx)
		if err != nil {
			t.Fatalf("second start failed: %v", err)
		}
		if second != first {
			t.Errorf("second start must return the existing port: %d != %d", second, first)
		}
		if svc.Port() != first {
			t.Errorf("Port() disagrees with Start(): %d != %d", svc.Port(), first)
		}
	})

	t.Run("Restart Rebinds", func(t *testing.T) {
		before := svc.Port()
		svc.Stop(ctx)
		if svc.Port() != 0 {
			t.Fatal("port must clear on stop")
		}
		again, err := svc.Start(ctx)
		if err != nil {
			t.Fatalf("restart failed: %v", err)
		}
		if again == 0 {
			t.Error("restart must bind a fresh ephemeral port")
		}
		_ = before // ports may or may not coincide, only the rebind matters
		svc.Stop(ctx)
	})
}

func TestImageRequests(t *testing.T) {
	fetcher := &fakeFetcher{
		fetchFunc: func(imageURL string) ([]byte, error) {
			if imageURL == "https://memos.test/file/bad/x.png" {
				return nil, errors.New("upstream 404")
			}
			return []byte("png-bytes"), nil
		},
	}

	var configured atomic.Bool
	configured.Store(true)
	source := func() imageproxy.Fetcher {
		if !configured.Load() {
			return nil
		}
		return fetcher
	}

	svc := imageproxy.New(nopLogger{}, source, imageproxy.Config{
		CacheTTL:        time.Minute,
		CacheSize:       8,
		FetchRatePerMin: 600,
	})
	port, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer svc.Stop(context.Background())

	t.Run("Missing URL Param", func(t *testing.T) {
		resp, _ := get(t, port, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("Unconfigured Client", func(t *testing.T) {
		configured.Store(false)
		resp, _ := get(t, port, "url="+url.QueryEscape("https://memos.test/file/a/x.png"))
		configured.Store(true)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("Success Streams Bytes", func(t *testing.T) {
		resp, body := get(t, port, "url="+url.QueryEscape("https://memos.test/file/a/x.png"))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if string(body) != "png-bytes" {
			t.Errorf("unexpected body: %q", body)
		}
		if got := resp.Header.Get("Cache-Control"); got != "public, max-age=3600" {
			t.Errorf("unexpected cache directive: %q", got)
		}
	})

	t.Run("Second Hit Served From Cache", func(t *testing.T) {
		before := fetcher.calls.Load()
		resp, _ := get(t, port, "url="+url.QueryEscape("https://memos.test/file/a/x.png"))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if fetcher.calls.Load() != before {
			t.Errorf("cached image must not refetch upstream")
		}
	})

	t.Run("Fetch Failure Is 500", func(t *testing.T) {
		resp, _ := get(t, port, "url="+url.QueryEscape("https://memos.test/file/bad/x.png"))
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", resp.StatusCode)
		}
	})
}
