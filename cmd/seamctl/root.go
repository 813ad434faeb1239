/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/codihuston/stdseam/internal/config"
	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/fsys"
	"github.com/codihuston/stdseam/pkg/httpx"
)

// DirPermissions is used for directories seamctl creates
const DirPermissions = 0o755

// flagKeys maps persistent flags to config keys
var flagKeys = map[string]string{
	"log-level":   "logging.level",
	"development": "logging.development",
	"client":      "http.kind",
	"timeout":     "http.timeout",
	"retries":     "http.max_retries",
	"rate-limit":  "http.rate_limit",
	"user-agent":  "http.user_agent",
	"insecure":    "http.insecure_skip_verify",
	"request-id":  "http.request_id",
	"output-dir":  "output_dir",
}

// app holds what every subcommand needs once flags are parsed
type app struct {
	deps *Dependencies

	cfg    *config.Config
	log    logr.Logger
	fs     fsys.FileSystem
	client httpx.Client
}

func newRootCmd(deps *Dependencies) *cobra.Command {
	a := &app{deps: deps}
	var configFile string

	root := &cobra.Command{
		Use:   "seamctl",
		Short: "Download, extract and copy files",
		Long: `seamctl moves bytes between HTTP endpoints and files. Settings come
from flags, STDSEAM_* environment variables and an optional YAML config
file, in that order of precedence.`,
		Version: version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. failed downloads)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, configFile)
		},
	}
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)
	root.SetVersionTemplate(`{{printf "seamctl version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/stdseam/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("development", false, "human-readable logs")
	flags.String("client", "", "HTTP client kind: default or retrying")
	flags.Duration("timeout", 0, "HTTP timeout")
	flags.Int("retries", 0, "maximum retries for the retrying client")
	flags.Float64("rate-limit", 0, "maximum requests per second")
	flags.String("user-agent", "", "User-Agent header")
	flags.Bool("insecure", false, "skip TLS certificate verification")
	flags.Bool("request-id", false, "send an X-Request-Id header")
	flags.String("output-dir", "", "directory for downloaded files")

	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newExtractCmd(a))
	root.AddCommand(newCopyCmd(a))
	root.AddCommand(newWaitCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// init loads the configuration and builds the logger and HTTP client
func (a *app) init(cmd *cobra.Command, configFile string) error {
	v, err := config.New(configFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.fs = a.deps.FileSystem

	a.log = logging.New(cfg.LoggingOptions(a.deps.Stderr)).WithName("seamctl")
	logging.SetDefault(a.log)
	cmd.SetContext(logging.IntoContext(cmd.Context(), a.log))

	opts := []httpx.FactoryOption{httpx.WithFactoryLogger(a.log.WithName("http"))}
	if cfg.HTTP.RequestID {
		opts = append(opts, httpx.WithFactoryRequestID())
	}
	client, err := a.deps.ClientFactory(opts...).CreateClient(cfg.HTTP.Kind, cfg.HTTP.ClientConfig(), cfg.HTTP.AuthConfig())
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}
	a.client = client
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of seamctl",
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seamctl version %s\n", version)
		},
	}
}
