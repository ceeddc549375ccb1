// Recipe Studio turns a dish idea into a recipe using a local Ollama
// model.
//
// Usage:
//
//	recipestudio [flags]                      interactive studio
//	recipestudio generate <idea...> [--json]  print one recipe
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipestudio/internal/config"
	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/engine"
	"github.com/hammamikhairi/recipestudio/internal/logger"
	"github.com/hammamikhairi/recipestudio/internal/ollama"
	"github.com/hammamikhairi/recipestudio/internal/storage"
)

// options holds the persistent flags. Only flags the user actually set
// override the loaded configuration.
type options struct {
	configPath string
	endpoint   string
	model      string
	timeout    time.Duration
	stream     bool
	offline    bool
	verbose    bool
	quiet      bool
	logFile    string
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "recipestudio",
		Short: "Generate recipes from a dish idea with a local Ollama model",
		Long: `Recipe Studio asks a local Ollama model for a recipe and always shows
a clean, complete result, however the model answers.

Run without arguments to start the interactive studio.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runStudio(cmd.Context(), cfg)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "YAML configuration file")
	f.StringVar(&opts.endpoint, "endpoint", ollama.DefaultEndpoint, "Ollama base URL (or set "+config.EnvURL+")")
	f.StringVar(&opts.model, "model", ollama.DefaultModel, "Ollama model name (or set "+config.EnvModel+")")
	f.DurationVar(&opts.timeout, "timeout", ollama.DefaultTimeout, "model request timeout")
	f.BoolVar(&opts.stream, "stream", false, "stream the model reply")
	f.BoolVar(&opts.offline, "offline", false, "never call the model; build recipes from the idea")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose/debug logging")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "disable all logging")
	f.StringVar(&opts.logFile, "log-file", "", `file to write logs to (default .recipestudio/studio.log, "stderr" logs to console)`)

	root.AddCommand(newGenerateCmd(opts))
	return root
}

// loadConfig layers defaults, file and environment, then the flags the
// user set, and validates the result.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(opts.configPath, flags.Changed("config"))
	if err != nil {
		return nil, err
	}

	if flags.Changed("endpoint") {
		cfg.Ollama.Endpoint = opts.endpoint
	}
	if flags.Changed("model") {
		cfg.Ollama.Model = opts.model
	}
	if flags.Changed("timeout") {
		cfg.Ollama.Timeout = opts.timeout
	}
	if flags.Changed("stream") {
		cfg.Ollama.Stream = opts.stream
	}
	if flags.Changed("offline") {
		cfg.Offline = opts.offline
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = opts.verbose
	}
	if flags.Changed("quiet") {
		cfg.Log.Quiet = opts.quiet
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLog directs logs to a file by default so the terminal stays clean.
// The returned func closes the file.
func openLog(cfg *config.Config) (*logger.Logger, func()) {
	var logOut io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.Log.File != "" && cfg.Log.File != "stderr" {
		dir := filepath.Dir(cfg.Log.File)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.Log.File, err)
		} else {
			logOut = f
			closeFn = func() { f.Close() }
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel(), logOut)
	return log, func() {
		_ = log.Sync()
		closeFn()
	}
}

// newGenerator wires the transport and the session store into a
// generator. Offline mode leaves the client nil.
func newGenerator(cfg *config.Config, store *storage.MemoryStore, log *logger.Logger) *engine.Generator {
	var client domain.ModelClient
	if cfg.Offline {
		log.Info("offline mode: model calls disabled")
	} else {
		client = ollama.NewClient(cfg.Ollama.Endpoint, log, cfg.ClientOptions()...)
		log.Info("using %s at %s (timeout=%s, stream=%v)", cfg.Ollama.Model, cfg.Ollama.Endpoint, cfg.Ollama.Timeout, cfg.Ollama.Stream)
	}
	return engine.New(client, store, log)
}

// withCancel returns a cancellable child of ctx, tolerating a nil ctx
// from commands executed without one.
func withCancel(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithCancel(ctx)
}
