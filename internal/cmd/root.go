package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/auth"
	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/sense-social/sense/cli/pkg/config"
	"github.com/sense-social/sense/cli/pkg/enrich"
	clierrors "github.com/sense-social/sense/cli/pkg/errors"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/sense-social/sense/cli/pkg/session"
	"github.com/sense-social/sense/cli/pkg/telemetry"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=..."
var Version = "0.1.0"

var (
	verbose    bool
	configPath string
	outputFmt  string
	apiURL     string
)

var (
	deps            service.Deps
	shutdownTracing telemetry.Shutdown
)

var rootCmd = &cobra.Command{
	Use:   "sense",
	Short: "Sense - read, write and discuss from the terminal",
	Long: `Sense is a command-line client for the Sense social platform.
Browse feeds, publish posts, articles and quotes, join the discussion
in comments, and draft with the AI composer directly from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		logger.Init(verbose)

		if outputFmt != "" {
			if !output.ValidateOutputFormat(outputFmt) {
				return clierrors.ValidationError("output", fmt.Sprintf("unknown format %q (use text, json, table or yaml)", outputFmt))
			}
			config.Set("output.format", outputFmt)
		}
		if apiURL != "" {
			config.Set("api.base_url", apiURL)
		}

		shutdown, err := telemetry.InitTracer(telemetry.ConfigFromViper(Version))
		if err != nil {
			logger.Warn("Tracing disabled", "error", err)
			shutdown = func(context.Context) error { return nil }
		}
		shutdownTracing = shutdown

		d, err := buildDeps()
		if err != nil {
			return err
		}
		deps = d
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdownTracing == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Failed to flush traces", "error", err)
		}
	},
}

// buildDeps wires the session, HTTP clients and enricher from config
func buildDeps() (service.Deps, error) {
	sess := session.New(session.NewFileStore(config.GetSessionPath()))
	if err := sess.Load(); err != nil {
		logger.Warn("Ignoring unreadable session", "error", err)
	}

	var transport http.RoundTripper
	if config.GetBool("telemetry.enabled") {
		transport = telemetry.Transport(nil)
	}
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	backend := api.NewBackend(client.New(client.Options{
		BaseURL:   config.GetString("api.base_url"),
		Timeout:   timeout,
		Tokens:    sess,
		Transport: transport,
	}))
	composer := api.NewComposer(client.New(client.Options{
		BaseURL:   config.GetString("ai.base_url"),
		Timeout:   timeout,
		Transport: transport,
	}))

	var opts []enrich.Option
	if config.GetBool("enrich.coalesce") {
		opts = append(opts, enrich.WithCoalescing())
	}
	if n := config.GetInt("enrich.max_concurrency"); n > 0 {
		opts = append(opts, enrich.WithConcurrency(n))
	}

	logger.Debug("Client configured",
		"api", config.GetString("api.base_url"),
		"ai", config.GetString("ai.base_url"),
		"authenticated", sess.IsAuthenticated(),
	)

	return service.Deps{
		Backend:  backend,
		Composer: composer,
		Session:  sess,
		Enricher: enrich.New(backend, opts...),
		PageSize: config.GetInt("feed.page_size"),
	}, nil
}

// Execute runs the command tree and exits non-zero on error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if auth.IsSessionError(err) && deps.Session != nil {
		err = deps.Recovery().HandleSessionError(err)
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprint(os.Stderr, clierrors.FormatError(err))
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/sense/cli/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "Output format: text, json, table, yaml (default from config)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the backend base URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(publicationCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(versionCmd)
}
