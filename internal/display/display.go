// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type keeps an overlay line, a notice line and an input prompt
// at the bottom of the terminal. Recipes and other output are printed
// above the rendered area via Program.Println / Printf, so concurrent
// writes never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoticeTTL is how long a notice stays on screen.
const NoticeTTL = 4 * time.Second

const promptText = "studio> "

// ── Styles ───────────────────────────────────────────────────────

var (
	overlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Primary text: light zinc for recipe body text.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text: dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Urgent: soft coral for errors/alerts.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Println], [UI.SetOverlay], [UI.Notice] and read from
// [UI.InputChan] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool
	width   atomic.Int32
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	u := &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
	u.width.Store(int32(TermWidth()))
	return u
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// Width returns the last known terminal width.
func (u *UI) Width() int { return int(u.width.Load()) }

// SetOverlay shows frame on the overlay line; an empty frame hides it.
func (u *UI) SetOverlay(frame string) {
	u.send(overlayMsg(frame))
}

// Notice shows a transient message above the prompt. It matches
// conversation.PrintFunc.
func (u *UI) Notice(format string, a ...interface{}) {
	u.send(noticeMsg(fmt.Sprintf(format, a...)))
}

func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
	}
}

// ── Styled print helpers ─────────────────────────────────────────

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an urgent/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("studio") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	m := newModel(u.inputCh, u.readyCh, u.PrintUserInput, func(w int) { u.width.Store(int32(w)) })

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	input     textinput.Model
	inputCh   chan<- string
	readyCh   chan struct{}
	echoFn    func(string) // prints user input into scrollback
	resizeFn  func(int)
	overlay   string
	notice    string
	noticeSeq int
	width     int
}

// Messages.
type (
	overlayMsg     string
	noticeMsg      string
	clearNoticeMsg int
)

func newModel(inputCh chan<- string, readyCh chan struct{}, echoFn func(string), resizeFn func(int)) model {
	ti := textinput.New()
	// Use a plain-text prompt so the textinput width math stays correct.
	// Lipgloss-styled prompts add invisible ANSI bytes that break the
	// internal offset/scroll calculations for long input.
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = "a dish idea, or help"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	return model{
		input:    ti,
		inputCh:  inputCh,
		readyCh:  readyCh,
		echoFn:   echoFn,
		resizeFn: resizeFn,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("Recipe Studio"),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			// Empty input is forwarded too; the app answers it with a notice.
			m.inputCh <- v
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			// Return a Cmd that prints the echo; this runs
			// outside Update so it won't deadlock on msgs.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.resizeFn != nil {
			m.resizeFn(msg.Width)
		}
		if msg.Width > len(promptText) {
			m.input.Width = msg.Width - len(promptText)
		}
		return m, nil

	case overlayMsg:
		m.overlay = string(msg)
		if m.overlay == "" {
			return m, tea.SetWindowTitle("Recipe Studio")
		}
		return m, tea.SetWindowTitle("Recipe Studio: " + m.overlay)

	case noticeMsg:
		m.noticeSeq++
		m.notice = string(msg)
		seq := m.noticeSeq
		return m, tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
			return clearNoticeMsg(seq)
		})

	case clearNoticeMsg:
		// Only the latest notice may be cleared by its own timer.
		if int(msg) == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	if m.overlay != "" {
		b.WriteString(overlayStyle.Render("  " + m.overlay))
		b.WriteByte('\n')
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render("  " + m.notice))
		b.WriteByte('\n')
	}

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}
