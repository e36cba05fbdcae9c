// Package tui provides a Bubble Tea terminal user interface for
// collection-gen: a three-entry menu dispatching to the image and
// metadata pipelines.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/fetch"
	"github.com/fakemp/collection-gen/internal/metadata"
	pipeprogress "github.com/fakemp/collection-gen/internal/progress"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// Action is one of the menu entries.
type Action int

const (
	ActionImages Action = iota
	ActionMetadata
	ActionQuit
)

var actionLabels = []string{
	"Download placeholder images",
	"Generate metadata files",
	"Quit",
}

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeprogress.Level
}

// eventLog collects pipeline events from the worker goroutine; the UI
// drains it on each tick.
type eventLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (l *eventLog) add(event pipeprogress.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Message: event.Message, Level: event.Level})
}

func (l *eventLog) drain() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.entries
	l.entries = nil
	return entries
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	action   Action
	selected int
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	events   *eventLog
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	fetcher  *fetch.Manager
	pipeline *metadata.Pipeline

	// Snapshot of the finished or in-flight run
	total     int
	processed int
	failed    int

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateMenu,
		spinner:  sp,
		progress: prog,
		settings: settings,
		events:   &eventLog{},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// RunDoneMsg is sent when the selected pipeline finishes.
	RunDoneMsg struct {
		Failed int
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateMenu {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}

		case "up", "k":
			if m.state == StateMenu && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == StateMenu && m.selected < len(actionLabels)-1 {
				m.selected++
			}

		case "enter":
			if m.state == StateMenu {
				return m.dispatch(Action(m.selected))
			}

		case "1":
			if m.state == StateMenu {
				return m.dispatch(ActionImages)
			}

		case "2":
			if m.state == StateMenu {
				return m.dispatch(ActionMetadata)
			}

		case "v":
			if m.state == StateMenu {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateMenu || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Back to the menu for another run
				m.state = StateMenu
				m.logs = nil
				m.err = nil
				m.processed = 0
				m.failed = 0
				m.total = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		if m.state == StateRunning {
			m.appendLogs(m.events.drain())
			m.refreshCounts()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case RunDoneMsg:
		m.appendLogs(m.events.drain())
		m.refreshCounts()
		m.failed = msg.Failed
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// dispatch starts the selected pipeline in the background.
func (m Model) dispatch(action Action) (tea.Model, tea.Cmd) {
	if action == ActionQuit {
		return m, tea.Quit
	}

	m.action = action
	m.state = StateRunning
	m.total = m.settings.NumItems

	switch action {
	case ActionImages:
		m.fetcher = fetch.NewManager(m.settings, m.events.add)
	case ActionMetadata:
		m.pipeline = metadata.NewPipeline(m.settings, m.events.add)
	}

	return m, tea.Batch(m.runPipeline(), m.tickProgress(), m.spinner.Tick)
}

// runPipeline executes the chosen pipeline and reports completion.
func (m Model) runPipeline() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		switch m.action {
		case ActionImages:
			failed, err := m.fetcher.FetchRange(ctx, 0, m.settings.NumItems)
			return RunDoneMsg{Failed: failed, Err: err}
		case ActionMetadata:
			err := m.pipeline.GenerateAll(ctx)
			return RunDoneMsg{Err: err}
		}
		return RunDoneMsg{}
	}
}

func (m *Model) refreshCounts() {
	switch m.action {
	case ActionImages:
		if m.fetcher != nil {
			m.processed, m.failed = m.fetcher.Progress()
		}
	case ActionMetadata:
		if m.pipeline != nil {
			m.processed = m.pipeline.Progress()
		}
	}
}

func (m *Model) appendLogs(entries []LogEntry) {
	for _, entry := range entries {
		if entry.Level == pipeprogress.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, entry)
	}
	// Keep only the tail
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🖼  Collection Gen"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Placeholder images and metadata for a fake NFT collection"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("What would you like to do?"))
	b.WriteString("\n\n")

	for i, label := range actionLabels {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == len(actionLabels)-1 {
			line = fmt.Sprintf("q. %s", label)
		}
		if i == m.selected {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", cursor, line))
	}

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Items: %d | Images: %s | Metadata: %s",
		m.settings.NumItems, m.settings.DownloadPath, m.settings.MetadataPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	switch m.action {
	case ActionImages:
		b.WriteString(subtitleStyle.Render("Downloading images..."))
	case ActionMetadata:
		b.WriteString(subtitleStyle.Render("Generating metadata..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.progress.View())
	b.WriteString("\n")

	status := fmt.Sprintf("Items: %d/%d", m.processed, m.total)
	if m.action == ActionImages && m.failed > 0 {
		status += fmt.Sprintf(" | Errors: %d", m.failed)
	}
	b.WriteString(infoStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var summary string
	switch m.action {
	case ActionImages:
		summary = fmt.Sprintf(
			"✨ Image download complete!\n\n"+
				"Processed: %d\n"+
				"Errors: %d\n\n"+
				"Upload the images to IPFS, then update ipfs_folder.",
			m.processed, m.failed)
	case ActionMetadata:
		summary = fmt.Sprintf(
			"✨ Metadata generation complete!\n\n"+
				"Records: %d\n\n"+
				"You can now upload the metadata to IPFS.",
			m.processed)
	}

	return boxStyle.Render(summary)
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeprogress.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeprogress.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeprogress.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeprogress.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "1: images • 2: metadata • ↑/↓ + enter: select • v: verbose • q: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: back to menu • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
