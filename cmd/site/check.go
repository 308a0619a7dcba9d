package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/content"
)

func newCheckCmd(flags *siteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the content document and audit in-page links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runCheck(cfg, cmd.OutOrStdout())
		},
	}
}

func runCheck(cfg config.Config, out io.Writer) error {
	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	_, rep, err := renderChecked(site, cfg.PageOptions())
	if err != nil {
		return err
	}

	source := cfg.ContentPath
	if source == "" {
		source = "embedded content"
	}
	fmt.Fprintf(out, "%s: ok, %d in-page link targets resolve to exactly one element\n", source, len(rep.Links))
	return nil
}
