package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipestudio/internal/conversation"
	"github.com/hammamikhairi/recipestudio/internal/display"
	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/engine"
	"github.com/hammamikhairi/recipestudio/internal/export"
	"github.com/hammamikhairi/recipestudio/internal/storage"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		asJSON bool
		style  string
	)

	cmd := &cobra.Command{
		Use:   "generate <idea...>",
		Short: "Generate one recipe and print it",
		Example: `  recipestudio generate spicy noodles
  recipestudio generate --json garlic bread`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			log, closeLog := openLog(cfg)
			defer closeLog()

			ctx, cancel := withCancel(cmd.Context())
			defer cancel()

			store := storage.NewMemoryStore(log)
			gen := newGenerator(cfg, store, log).Generate(ctx, strings.Join(args, " "))
			log.Info("generate: %s", engine.Describe(gen))

			notifier := conversation.NewCLINotifier(log, func(format string, a ...interface{}) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
			})
			if gen.Recovered {
				_ = notifier.NotifyUrgent(ctx, conversation.LineRecovered())
			} else if gen.Source == domain.SourceFallback && !cfg.Offline {
				_ = notifier.Notify(ctx, conversation.LineModelUnavailable())
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(gen.Recipe)
			}

			md := export.Markdown(gen.Recipe)
			if style == "raw" {
				fmt.Fprint(out, md)
				return nil
			}
			fmt.Fprintln(out, export.NewRenderer(log, style).Render(md, display.TermWidth()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the recipe as JSON")
	cmd.Flags().StringVar(&style, "style", "", `glamour style ("dark", "light", "notty"), or "raw" for plain Markdown`)
	return cmd
}
