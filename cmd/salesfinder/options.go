package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aerissecure/salesfinder/config"
	"github.com/aerissecure/salesfinder/page"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	viewer     string
	now        string
}

// AddFlags adds the global flags to the specified FlagSet
func (o *globalOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&o.viewer, "viewer", "", "Steam id of the viewer, overrides the configuration and the page header")
	fs.StringVar(&o.now, "now", "", "Reference time for recency tiers (RFC 3339), defaults to the current time")
}

// wordSepNormalizeFunc lets "_" and "-" be used interchangeably in flag names.
func wordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}

// config loads the configuration file and applies flag overrides.
func (o *globalOptions) config() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.viewer != "" {
		cfg.ViewerSteamID = o.viewer
	}
	if o.now != "" {
		cfg.Now = o.now
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func (o *globalOptions) pageOptions() (page.Options, error) {
	cfg, err := o.config()
	if err != nil {
		return page.Options{}, err
	}
	return page.NewOptions(cfg), nil
}

// openInput opens the file named by args, or stdin when there is none.
func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(args[0])
}

// writeOutput writes contents to path, or to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, contents string) error {
	if path == "" {
		_, err := io.WriteString(stdout, contents)
		return err
	}
	return os.WriteFile(path, []byte(contents), 0644)
}
