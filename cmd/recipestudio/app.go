package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hammamikhairi/recipestudio/internal/config"
	"github.com/hammamikhairi/recipestudio/internal/conversation"
	"github.com/hammamikhairi/recipestudio/internal/display"
	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/engine"
	"github.com/hammamikhairi/recipestudio/internal/export"
	"github.com/hammamikhairi/recipestudio/internal/logger"
	"github.com/hammamikhairi/recipestudio/internal/overlay"
	"github.com/hammamikhairi/recipestudio/internal/storage"
)

// screen is the part of the display the app loop drives.
type screen interface {
	InputChan() <-chan string
	PrintRecipe(r domain.Recipe)
	PrintHint(text string)
	Quit()
}

// animator shows progress while a generation runs.
type animator interface {
	Start(ctx context.Context) uint64
	Stop()
}

// runStudio starts the interactive studio and blocks until the user quits.
func runStudio(parent context.Context, cfg *config.Config) error {
	log, closeLog := openLog(cfg)
	defer closeLog()

	// Cancelled when the UI quits.
	ctx, cancel := withCancel(parent)
	defer cancel()

	// Wire dependencies.
	store := storage.NewMemoryStore(log)
	ui := display.NewUI()
	app := &cliApp{
		gen:      newGenerator(cfg, store, log),
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, ui.Notice),
		store:    store,
		clip:     export.NewClipboard(log),
		overlay:  overlay.New(ui.SetOverlay, log),
		log:      log,
		ui:       ui,
	}

	if !export.Available() {
		log.Warn("no clipboard utility found; copy will fail")
	}

	fmt.Println(display.RenderBanner(conversation.LineWelcome(cfg.Ollama.Model, cfg.Offline)))
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	err := ui.Run()
	if err != nil {
		log.Error("display: %v", err)
	}
	cancel()
	app.wait()
	return err
}

// cliApp reads user input and runs at most one generation at a time.
type cliApp struct {
	gen      *engine.Generator
	parser   domain.IntentParser
	notifier domain.Notifier
	store    *storage.MemoryStore
	clip     *export.Clipboard
	overlay  animator
	log      *logger.Logger
	ui       screen

	busy atomic.Bool
	wg   sync.WaitGroup
}

func (a *cliApp) run(ctx context.Context) {
	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent runs one intent. It returns false when the app should stop.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentGenerate:
		if err := a.generate(ctx, intent.Payload); err != nil {
			a.log.Debug("generate rejected: %v", err)
		}
	case domain.IntentReset:
		a.store.ClearCurrent()
		a.ui.PrintHint(conversation.LineReset())
	case domain.IntentCopy:
		a.copyCurrent(ctx)
	case domain.IntentShow:
		a.showCurrent(ctx)
	case domain.IntentHelp:
		a.ui.PrintHint(conversation.LineHelp())
	case domain.IntentQuit:
		a.ui.PrintHint(conversation.LineBye())
		return false
	case domain.IntentUnknown:
		_ = a.notifier.Notify(ctx, conversation.LineEmptyIdea())
	}
	return true
}

// generate starts a generation in the background. It returns
// domain.ErrEmptyIdea or domain.ErrBusy when the request is rejected.
func (a *cliApp) generate(ctx context.Context, idea string) error {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		_ = a.notifier.Notify(ctx, conversation.LineEmptyIdea())
		return domain.ErrEmptyIdea
	}
	if !a.busy.CompareAndSwap(false, true) {
		_ = a.notifier.Notify(ctx, conversation.LineBusy())
		return domain.ErrBusy
	}

	a.overlay.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.busy.Store(false)

		gen := a.gen.Generate(ctx, idea)
		a.overlay.Stop()

		a.store.SetCurrent(&gen.Recipe)
		a.ui.PrintRecipe(gen.Recipe)

		switch {
		case gen.Recovered:
			_ = a.notifier.NotifyUrgent(ctx, conversation.LineRecovered())
		case gen.Source == domain.SourceFallback && !a.gen.Offline():
			_ = a.notifier.Notify(ctx, conversation.LineModelUnavailable())
		}
	}()
	return nil
}

func (a *cliApp) copyCurrent(ctx context.Context) {
	r, err := a.store.Current()
	if err != nil {
		_ = a.notifier.Notify(ctx, conversation.LineNothingToCopy())
		return
	}
	if err := a.clip.Copy(r); err != nil {
		a.log.Error("copy: %v", err)
		_ = a.notifier.NotifyUrgent(ctx, conversation.LineCopyFailed(err))
		return
	}
	_ = a.notifier.Notify(ctx, conversation.LineCopied(r.Title))
}

func (a *cliApp) showCurrent(ctx context.Context) {
	r, err := a.store.Current()
	if err != nil {
		_ = a.notifier.Notify(ctx, conversation.LineNothingToShow())
		return
	}
	a.ui.PrintRecipe(*r)
}

// wait blocks until an in-flight generation has finished.
func (a *cliApp) wait() {
	a.wg.Wait()
}
