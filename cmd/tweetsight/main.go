package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/lakshcode9/tweetsight/internal/adapters/log"
	"github.com/lakshcode9/tweetsight/internal/adapters/openrouter"
	"github.com/lakshcode9/tweetsight/internal/adapters/twitter"
	"github.com/lakshcode9/tweetsight/internal/cliconfig"
	"github.com/lakshcode9/tweetsight/internal/session"
)

const helpDescription = `
Fetch a Twitter account's most recent tweets and distill them into three
concise, actionable insights with an OpenRouter-hosted language model.

Highlights:
  - Interactive prompt loop; type a handle, get insights, repeat.
  - Classified failures (not found, private, rate limited) never kill the loop.
  - Transient failures retry automatically with exponential backoff.
  - Credentials via .env, environment, config file, or flags.

Required credentials: TWITTER_BEARER_TOKEN and OPENROUTER_API_KEY.
`

var exampleUsage = strings.TrimSpace(`
  tweetsight
  tweetsight --handle jack
  tweetsight --config $HOME/.tweetsight/config.toml --model deepseek/deepseek-r1-distill-qwen-7b
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		envFile string
		verbose bool
	)

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:          "tweetsight",
		Short:        "Summarize a Twitter account's recent tweets into three insights",
		Long:         strings.TrimSpace(helpDescription),
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			// Load .env first so its values are visible as environment
			// variables to the layering below.
			if err := cliconfig.LoadDotEnv(envFile); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}

			// Determine config path
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides file config but is overridden by flags
			// (checked via changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().Interface("config", cfg.Masked()).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
			logger := logAdapter.NewZerologAdapterWithLogger(log)

			source := twitter.New(cfg.BearerToken, httpClient, logger)
			engine := openrouter.New(cfg.GenerationAPIKey, cfg.GenerationModel, httpClient, logger)

			// Config is immutable for the process lifetime; the watcher only
			// warns that edits need a restart.
			watchEnv := envFile
			if watchEnv == "" {
				watchEnv = ".env"
			}
			go cliconfig.NewConfigWatcher(log, cfgFile, watchEnv).Run(ctx)

			sess := session.New(
				session.Config{FetchLimit: cfg.FetchLimit, Policy: cfg.RetryPolicy()},
				source,
				engine,
				logger,
				os.Stdin,
				os.Stdout,
			)

			if cfg.Handle != "" {
				return sess.RunOnce(ctx, cfg.Handle)
			}
			return sess.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file (default $HOME/.tweetsight/config.toml)")
	root.Flags().StringVar(&envFile, "env-file", "", "path to .env file (default ./.env)")
	root.Flags().StringVar(&cfg.BearerToken, "bearer-token", cfg.BearerToken, "Twitter API bearer token")
	root.Flags().StringVar(&cfg.GenerationAPIKey, "generation-api-key", cfg.GenerationAPIKey, "OpenRouter API key")
	root.Flags().StringVar(&cfg.GenerationModel, "model", cfg.GenerationModel, "OpenRouter model identifier")
	root.Flags().StringVar(&cfg.Handle, "handle", "", "analyze a single handle and exit")
	root.Flags().IntVar(&cfg.FetchLimit, "limit", cfg.FetchLimit, "number of recent tweets to analyze")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-call HTTP timeout")
	root.Flags().IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "attempts per network call before giving up")
	root.Flags().DurationVar(&cfg.RetryBaseDelay, "retry-base-delay", cfg.RetryBaseDelay, "backoff delay before the first retry")
	root.Flags().Float64Var(&cfg.RetryMultiplier, "retry-multiplier", cfg.RetryMultiplier, "backoff growth factor")
	root.Flags().DurationVar(&cfg.RetryMaxDelay, "retry-max-delay", cfg.RetryMaxDelay, "backoff delay cap")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
