// Package config implements the config command for initializing and inspecting docs-preview configuration.
package config

import (
	"fmt"
	"io"

	"github.com/alan/docs-preview/cmd"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitOptions holds the values the init subcommand writes
type InitOptions struct {
	BaseURL       string
	SpecFile      string
	SpecTitle     string
	VersionPrefix string
	ParentVersion string
	PreviewURL    string
}

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the .docs-preview.yaml configuration file",
	}

	configCmd.AddCommand(newShowCmd(globalConfigFile, loadConfig))
	configCmd.AddCommand(newInitCmd(globalConfigFile, loadConfig, saveConfig))

	return configCmd
}

func newShowCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Print the effective configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runShow(cobraCmd.OutOrStdout(), *globalConfigFile, loadConfig)
		},
	}
}

func newInitCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	var opts InitOptions

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file, keeping values already present",
		Long: `Init writes the configuration file with the provided values.

Values that are not given keep what is already in the file, or the defaults
when the file does not exist yet.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runInit(cobraCmd.OutOrStdout(), *globalConfigFile, opts, loadConfig, saveConfig)
		},
	}

	cobraCmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "Documentation platform API base URL")
	cobraCmd.Flags().StringVarP(&opts.SpecFile, "spec", "s", "", "Path to the OpenAPI spec file")
	cobraCmd.Flags().StringVarP(&opts.SpecTitle, "title", "t", "", "Title of the spec to overwrite (defaults to info.title)")
	cobraCmd.Flags().StringVarP(&opts.VersionPrefix, "prefix", "p", "", "Prefix for preview version ids")
	cobraCmd.Flags().StringVar(&opts.ParentVersion, "parent", "", "Version new previews are forked from")
	cobraCmd.Flags().StringVar(&opts.PreviewURL, "preview-url", "", "Preview link template, {version} is replaced by the version id")

	return cobraCmd
}

func runShow(w io.Writer, configFile string, loadConfig func(string) (*cmd.Config, error)) error {
	config, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func runInit(w io.Writer, configFile string, opts InitOptions, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	config, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	updateConfigWithProvidedValues(config, opts)

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayConfigSuccess(w, configFile, config)
	return nil
}

// updateConfigWithProvidedValues updates config with any non-empty provided values
func updateConfigWithProvidedValues(config *cmd.Config, opts InitOptions) {
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	if opts.SpecFile != "" {
		config.SpecFile = opts.SpecFile
	}
	if opts.SpecTitle != "" {
		config.SpecTitle = opts.SpecTitle
	}
	if opts.VersionPrefix != "" {
		config.VersionPrefix = opts.VersionPrefix
	}
	if opts.ParentVersion != "" {
		config.ParentVersion = opts.ParentVersion
	}
	if opts.PreviewURL != "" {
		config.PreviewURL = opts.PreviewURL
	}
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(w io.Writer, configFile string, config *cmd.Config) {
	_, _ = fmt.Fprintf(w, "Successfully wrote %s with:\n", configFile)
	_, _ = fmt.Fprintf(w, "  Base URL: %s\n", config.BaseURL)
	_, _ = fmt.Fprintf(w, "  Spec File: %s\n", config.SpecFile)
	_, _ = fmt.Fprintf(w, "  Version Prefix: %s\n", config.VersionPrefix)
	_, _ = fmt.Fprintf(w, "  Parent Version: %s\n", config.ParentVersion)
	_, _ = fmt.Fprintf(w, "  Preview URL: %s\n", config.PreviewURL)
}
