package main

import (
	"github.com/spf13/cobra"

	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/page"
)

// siteFlags override environment settings only when set on the command line.
type siteFlags struct {
	content  string
	logLevel string
	addr     string
	dev      bool
	variant  string
	baseURL  string
	lang     string
}

func newRootCmd() *cobra.Command {
	flags := &siteFlags{}

	cmd := &cobra.Command{
		Use:           "site",
		Short:         "Serve, export and check the Rally Point brochure site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.content, "content", "", "Content document (YAML); the embedded document when empty")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))

	return cmd
}

func addRenderFlags(cmd *cobra.Command, flags *siteFlags) {
	cmd.Flags().StringVar(&flags.variant, "variant", "", "Contact form variant (acknowledge, static)")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "Public base URL for canonical links and the sitemap")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "Document language tag")
}

// resolveConfig layers changed flags over the environment and validates.
func resolveConfig(cmd *cobra.Command, flags *siteFlags) (config.Config, error) {
	cfg := config.FromEnv()
	set := cmd.Flags().Changed

	if set("content") {
		cfg.ContentPath = flags.content
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if set("addr") {
		cfg.Addr = flags.addr
	}
	if set("dev") {
		cfg.Dev = flags.dev
	}
	if set("variant") {
		cfg.Variant = page.Variant(flags.variant)
	}
	if set("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if set("lang") {
		cfg.Lang = flags.lang
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
