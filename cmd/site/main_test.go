package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"rallypointwellness.com/site/internal/audit"
	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/content"
	"rallypointwellness.com/site/internal/page"
)

func defaultConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.FromLookup(func(string) (string, bool) { return "", false })
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestExportWritesSite(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "dist")
	var log bytes.Buffer
	require.NoError(t, runExport(defaultConfig(t), out, &log))
	require.Contains(t, log.String(), "1 asset files")

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	require.Equal(t, "assets/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))

	_, err = os.Stat(filepath.Join(out, "assets", "site.css"))
	require.NoError(t, err)
	robots, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(robots), "User-agent: *"))

	// re-export over an existing tree
	require.NoError(t, runExport(defaultConfig(t), out, io.Discard))
}

func TestRenderCheckedRejectsDanglingAnchors(t *testing.T) {
	t.Parallel()

	site, err := content.Default()
	require.NoError(t, err)
	site.Nav = append(site.Nav, content.Link{Label: "Services", Href: "#military"})

	_, rep, err := renderChecked(site, page.Options{})
	var aerr *audit.Error
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, []string{"military"}, rep.Missing)
}

func TestExportRefusesInvalidContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
contact: { phone: "(805) 555-0100", email: intake@example.com }
nav:
  - { label: Services, href: "#military" }
`), 0o600))

	cfg := defaultConfig(t)
	cfg.ContentPath = src
	out := filepath.Join(dir, "dist")

	err := runExport(cfg, out, io.Discard)
	var verr *content.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))

	require.Error(t, runCheck(cfg, io.Discard))
}

func TestCheckCommandUsesFlags(t *testing.T) {
	t.Setenv("SITE_VARIANT", "bogus")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check"})
	require.Error(t, cmd.Execute(), "invalid env variant must fail without a flag override")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--variant", "static", "--out", t.TempDir()})
	require.NoError(t, cmd.Execute())

	out.Reset()
	t.Setenv("SITE_VARIANT", "")
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "embedded content: ok")
}

func TestServeUntilDoneShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, srv, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, <-done)
}

func TestRunServeStopsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := filepath.Join(t.TempDir(), "site.yaml")
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "content", "site.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(src, data, 0o600))

	cfg := defaultConfig(t)
	cfg.Addr = "127.0.0.1:0"
	cfg.ContentPath = src
	cfg.Dev = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, runServe(ctx, cfg, zap.NewNop()))
}
