// Package cli implements graphctl, a command line client for the graph API.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/graph-vis/internal/client"
	"github.com/JaimeStill/graph-vis/pkg/httpclient"
)

// Environment variables read for the client configuration.
const (
	EnvBaseURL = "APP_BASE_URL"
	EnvTimeout = "APP_TIMEOUT"
)

type options struct {
	envFile string
	baseURL string
	timeout string
	format  string
	query   string

	client *client.Client
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "graphctl",
		Short:        "Query the protein domain co-occurrence graph API",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.connect()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before reading "+EnvBaseURL)
	flags.StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides "+EnvBaseURL+")")
	flags.StringVar(&opts.timeout, "timeout", "", "Request timeout (overrides "+EnvTimeout+")")
	flags.StringVarP(&opts.format, "output", "o", "json", "Output format: json|yaml")
	flags.StringVarP(&opts.query, "query", "q", "", "JSONPath expression applied to the result")

	cmd.AddCommand(
		graphCmd(opts),
		nodeCmd(opts),
		refreshCmd(opts),
		domainsCmd(opts),
		sequenceCmd(opts),
		repeatsCmd(opts),
		artifactCmd(opts),
		svgPageCmd(opts),
	)

	return cmd
}

// connect builds the shared client. Flags win over the environment, which
// wins over the .env file.
func (o *options) connect() error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}

	cfg := &httpclient.Config{}
	env := &httpclient.Env{BaseURL: EnvBaseURL, Timeout: EnvTimeout}

	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
		env.BaseURL = ""
	}
	if o.timeout != "" {
		cfg.Timeout = o.timeout
		env.Timeout = ""
	}

	if err := cfg.Finalize(env); err != nil {
		if errors.Is(err, httpclient.ErrBaseURLRequired) {
			return fmt.Errorf("%w: set %s or pass --base-url", err, EnvBaseURL)
		}
		return err
	}

	o.client = client.New(httpclient.New(cfg))
	return nil
}
