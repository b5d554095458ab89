package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/copyforge/copyforge/internal/clipboard"
	"github.com/copyforge/copyforge/internal/composer"
	"github.com/copyforge/copyforge/internal/export"
	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/preview"
)

// createGlamourRenderer creates a glamour renderer matched to the terminal.
// GLAMOUR_STYLE overrides detection.
func createGlamourRenderer(wordWrap int) (*glamour.TermRenderer, error) {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrap),
		)
	}

	profile := termenv.ColorProfile()

	var styleOption glamour.TermRendererOption
	switch {
	case profile == termenv.Ascii:
		styleOption = glamour.WithAutoStyle()
	case lipgloss.HasDarkBackground():
		styleOption = glamour.WithStandardStyle("dark")
	default:
		styleOption = glamour.WithStandardStyle("light")
	}

	return glamour.NewTermRenderer(
		styleOption,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(wordWrap),
	)
}

// ViewMode represents the current view in the TUI.
type ViewMode int

const (
	ViewEditor ViewMode = iota
	ViewOutput
)

// Model is the TUI application state. All derived output (prompt, preview)
// is recomputed whenever the brief or mode changes by value; nothing is
// updated incrementally.
type Model struct {
	viewMode ViewMode

	form     *BriefForm
	selector *OptionSelector

	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	glamourRenderer *glamour.TermRenderer

	// Memoized inputs and their derived outputs.
	lastBrief  models.Brief
	lastMode   models.Mode
	prompt     string
	variations []preview.Variation
	headlines  []string

	width  int
	height int

	statusMsg     string
	statusIsError bool
	statusTimeout int
}

// KeyMap defines all key bindings.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	ToggleMode key.Binding
	Output     key.Binding
	CopyPrompt key.Binding
	Export     key.Binding
	Pick       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.Output, k.CopyPrompt, k.Quit}
}

// FullHelp returns keybindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Pick},
		{k.ToggleMode, k.Output, k.CopyPrompt, k.Export},
		{k.Back, k.Quit},
	}
}

var keys = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "previous field"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "switch mode"),
	),
	Output: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "output view"),
	),
	CopyPrompt: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy prompt"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export .txt"),
	),
	Pick: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick option"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// NewModel creates the TUI model with a default brief.
func NewModel() (*Model, error) {
	initializeColors()
	initializeStyles()

	renderer, err := createGlamourRenderer(76)
	if err != nil {
		return nil, fmt.Errorf("failed to create glamour renderer: %w", err)
	}

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	m := &Model{
		viewMode:        ViewEditor,
		form:            NewBriefForm(models.DefaultBrief(), models.ModeAdCopy),
		viewport:        vp,
		help:            help.New(),
		keys:            keys,
		glamourRenderer: renderer,
		lastMode:        models.ModeAdCopy,
	}
	m.lastBrief = m.form.Brief()
	m.recompute(true)
	return m, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// tickMsg drives the timed status-message clear.
type tickMsg time.Time

func clearStatusCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMsg = msg
	m.statusIsError = isError
	m.statusTimeout = 3
	return clearStatusCmd()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.statusTimeout > 0 {
			m.statusTimeout--
			if m.statusTimeout == 0 {
				m.statusMsg = ""
				return m, nil
			}
			return m, clearStatusCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The selector modal swallows everything while open.
	if m.selector != nil {
		cmd := m.selector.Update(msg)
		if m.selector.Done() {
			if value, ok := m.selector.Selected(); ok {
				m.form.SetChoice(m.selector.Target(), value)
			}
			m.selector = nil
			m.recompute(false)
		}
		return m, cmd
	}

	// Global bindings work in every view; they use ctrl chords so text
	// fields never lose printable keys.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleMode):
		m.form.SetMode(m.form.Mode().Toggle())
		m.recompute(true)
		return m, m.setStatus(fmt.Sprintf("Mode: %s", m.form.Mode()), false)

	case key.Matches(msg, m.keys.Output):
		if m.viewMode == ViewOutput {
			m.viewMode = ViewEditor
		} else {
			m.viewMode = ViewOutput
			m.refreshViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyPrompt):
		return m, m.copyText(m.prompt)

	case key.Matches(msg, m.keys.Export):
		path, err := export.WritePrompt("", m.form.Mode(), m.prompt)
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		}
		return m, m.setStatus(fmt.Sprintf("Saved %s", path), false)
	}

	switch m.viewMode {
	case ViewEditor:
		return m.handleEditorKey(msg)
	case ViewOutput:
		return m.handleOutputKey(msg)
	}
	return m, nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Enter on a choice field opens the fuzzy picker instead of cycling.
	if msg.String() == "enter" {
		if id, kind := m.form.Focused(); kind == fieldChoice {
			label, options := m.form.FocusedOptions()
			m.selector = NewOptionSelector(label, options, id)
			return m, nil
		}
	}

	cmd := m.form.Update(msg)
	m.recompute(false)
	return m, cmd
}

func (m *Model) handleOutputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.viewMode = ViewEditor
		return m, nil
	case "c":
		return m, m.copyText(m.prompt)
	case "x":
		path, err := export.WritePrompt("", m.form.Mode(), m.prompt)
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		}
		return m, m.setStatus(fmt.Sprintf("Saved %s", path), false)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if text, ok := m.previewItemText(idx); ok {
			return m, m.copyText(text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// copyText writes to the clipboard and reports through the status line. A
// failed copy is just a status message; there is no retry.
func (m *Model) copyText(text string) tea.Cmd {
	statusMsg, err := clipboard.CopyWithFallback(text)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus(statusMsg, false)
}

// previewItemText returns the copyable text of preview item idx.
func (m *Model) previewItemText(idx int) (string, bool) {
	if m.form.Mode() == models.ModeHeadlines {
		if idx < len(m.headlines) {
			return m.headlines[idx], true
		}
		return "", false
	}
	if idx < len(m.variations) {
		return m.variations[idx].ClipboardText(), true
	}
	return "", false
}

// recompute re-derives the prompt and the preview when the brief or the
// mode changed by value. force skips the memoization check.
func (m *Model) recompute(force bool) {
	brief := m.form.Brief()
	mode := m.form.Mode()
	if !force && brief == m.lastBrief && mode == m.lastMode {
		return
	}
	m.lastBrief = brief
	m.lastMode = mode

	m.prompt = composer.Compose(mode, brief)
	if mode == models.ModeHeadlines {
		m.headlines = preview.SimulateHeadlines(brief)
		m.variations = nil
	} else {
		m.variations = preview.SimulateAdCopy(brief)
		m.headlines = nil
	}

	if m.viewMode == ViewOutput {
		m.refreshViewport()
	}
}

// refreshViewport re-renders the output view content through glamour.
func (m *Model) refreshViewport() {
	rendered, err := m.glamourRenderer.Render(m.outputMarkdown())
	if err != nil {
		// Glamour failing is cosmetic; fall back to the raw text.
		rendered = m.outputMarkdown()
	}
	m.viewport.SetContent(rendered)
}

// outputMarkdown is the output view body: the composed prompt followed by
// the offline preview.
func (m *Model) outputMarkdown() string {
	var sb strings.Builder

	sb.WriteString("## Composed prompt\n\n")
	sb.WriteString(m.prompt)
	sb.WriteString("\n---\n\n## Offline preview (mock, deterministic)\n\n")

	if m.form.Mode() == models.ModeHeadlines {
		for i, h := range m.headlines {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, h)
		}
	} else {
		for i, v := range m.variations {
			fmt.Fprintf(&sb, "**Variation %d.** %s\n\n", i+1, v.Body)
			if v.TextOnCreative != "" {
				fmt.Fprintf(&sb, "_TOC: %s_\n\n", v.TextOnCreative)
			}
		}
	}

	return sb.String()
}

// View renders the current view.
func (m *Model) View() string {
	if m.selector != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.selector.View())
	}

	title := styleTitle.Render(fmt.Sprintf("copyforge — %s", m.form.Mode()))
	status := m.statusLine()
	helpLine := m.help.View(m.keys)

	switch m.viewMode {
	case ViewOutput:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			m.viewport.View(),
			status,
			styleHelpText.Render("c copy prompt · 1-9 copy item · x export · esc back"),
		)
	default:
		body := m.form.View()
		if m.width >= 110 {
			pane := stylePaneBorder.Width(m.width - lipgloss.Width(body) - 8).Render(m.previewPane())
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", pane)
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, body, status, helpLine)
	}
}

func (m *Model) statusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusIsError {
		return styleStatusErr.Render(m.statusMsg)
	}
	return styleStatusOK.Render(m.statusMsg)
}

// previewPane is the compact live preview shown beside the editor on wide
// terminals.
func (m *Model) previewPane() string {
	var sb strings.Builder
	sb.WriteString(stylePreviewHead.Render("Live preview") + "\n\n")

	if m.form.Mode() == models.ModeHeadlines {
		for i, h := range m.headlines {
			if i >= 8 {
				fmt.Fprintf(&sb, "… %d more\n", len(m.headlines)-i)
				break
			}
			fmt.Fprintf(&sb, "%d. %s\n", i+1, h)
		}
	} else {
		for i, v := range m.variations {
			if i >= 3 {
				fmt.Fprintf(&sb, "… %d more\n", len(m.variations)-i)
				break
			}
			fmt.Fprintf(&sb, "%d. %s\n", i+1, v.Body)
			if v.TextOnCreative != "" {
				sb.WriteString(styleHelpText.Render("   TOC: "+v.TextOnCreative) + "\n")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + styleHelpText.Render("ctrl+o full output"))
	return sb.String()
}
