package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rallypointwellness.com/site/internal/audit"
	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/content"
	"rallypointwellness.com/site/internal/page"
	"rallypointwellness.com/site/internal/server"
	"rallypointwellness.com/site/public"
)

func newExportCmd(flags *siteFlags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		Long: `Export renders index.html with relative asset links and copies the stylesheet
under assets/. Nothing is written when an in-page link has no target or more
than one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runExport(cfg, outDir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "dist", "Output directory")
	addRenderFlags(cmd, flags)

	return cmd
}

// renderChecked renders the page and fails when the anchor audit does.
func renderChecked(site *content.Site, opts page.Options) ([]byte, audit.Report, error) {
	var buf bytes.Buffer
	if err := page.Build(site, opts).Render(&buf); err != nil {
		return nil, audit.Report{}, fmt.Errorf("render page: %w", err)
	}
	rep, err := audit.Anchors(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, audit.Report{}, err
	}
	if err := rep.Err(); err != nil {
		return nil, rep, err
	}
	return buf.Bytes(), rep, nil
}

func runExport(cfg config.Config, outDir string, out io.Writer) error {
	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	opts := cfg.PageOptions()
	opts.AssetsPrefix = "assets"
	html, _, err := renderChecked(site, opts)
	if err != nil {
		return err
	}

	assets, err := public.StaticFS()
	if err != nil {
		return fmt.Errorf("embed static: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	files := map[string][]byte{
		"index.html": html,
		"robots.txt": []byte(server.Robots(cfg.BaseURL)),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	n, err := copyTree(assets, filepath.Join(outDir, "assets"))
	if err != nil {
		return fmt.Errorf("export assets: %w", err)
	}

	fmt.Fprintf(out, "exported %s (index.html, robots.txt, %d asset files)\n", outDir, n)
	return nil
}

// copyTree writes every file in fsys under dir, overwriting earlier exports.
func copyTree(fsys fs.FS, dir string) (int, error) {
	var n int
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}
