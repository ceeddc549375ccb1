package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// Clipboard copies recipes as Markdown to the system clipboard.
type Clipboard struct {
	log   *logger.Logger
	write func(string) error
}

// ClipboardOption configures the Clipboard.
type ClipboardOption func(*Clipboard)

// WithWriter replaces the system clipboard writer.
func WithWriter(write func(string) error) ClipboardOption {
	return func(c *Clipboard) { c.write = write }
}

// NewClipboard creates a clipboard exporter backed by atotto/clipboard.
func NewClipboard(log *logger.Logger, opts ...ClipboardOption) *Clipboard {
	c := &Clipboard{log: log, write: clipboard.WriteAll}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Available reports whether a system clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy writes r as Markdown. A nil recipe returns domain.ErrNotFound.
func (c *Clipboard) Copy(r *domain.Recipe) error {
	if r == nil {
		return domain.ErrNotFound
	}
	md := Markdown(*r)
	if err := c.write(md); err != nil {
		return fmt.Errorf("export: clipboard: %w", err)
	}
	c.log.Debug("export: copied %q (%d bytes)", r.Title, len(md))
	return nil
}
