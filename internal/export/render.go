package export

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// Renderer turns Markdown into styled terminal output. Renderers are cached
// per wrap width.
type Renderer struct {
	log   *logger.Logger
	style string

	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer. An empty style picks one from the
// terminal background.
func NewRenderer(log *logger.Logger, style string) *Renderer {
	return &Renderer{
		log:   log,
		style: style,
		cache: make(map[int]*glamour.TermRenderer),
	}
}

// Render styles md wrapped at width. On any failure the raw Markdown is
// returned.
func (r *Renderer) Render(md string, width int) string {
	if width <= 0 {
		width = 80
	}

	tr, err := r.termRenderer(width)
	if err != nil {
		r.log.Warn("export: creating renderer: %v", err)
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		r.log.Warn("export: rendering markdown: %v", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.cache[width]; ok {
		return tr, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStylePath(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	r.cache[width] = tr
	return tr, nil
}
