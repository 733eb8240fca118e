package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/advgame/internal/engine"
	"github.com/tatianab/advgame/internal/loader"
	"github.com/tatianab/advgame/internal/story"
	"go.uber.org/zap"
)

type sessionState int

const (
	stateGate sessionState = iota
	statePlaying
	stateDeclined
	stateFarewell
)

// Options configures the terminal UI.
type Options struct {
	// Watcher, when set, restarts the game whenever the story file changes.
	Watcher *story.Watcher
	Log     *zap.Logger
}

type model struct {
	state    sessionState
	engine   *engine.Engine
	opts     Options
	log      *zap.Logger
	viewport viewport.Model
	help     help.Model
	status   string
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	stageNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Italic(true)

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))
)

func NewModel(eng *engine.Engine, opts Options) model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	vp := viewport.New(80, 20)
	// Arrow keys and letters drive the game, so the viewport only pages.
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	return model{
		state:    stateGate,
		engine:   eng,
		opts:     opts,
		log:      log,
		viewport: vp,
		help:     help.New(),
	}
}

type storyChangedMsg struct {
	path string
}

type watchErrMsg struct {
	err error
}

func (m model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateGate:
			switch actionFor(msg).Kind {
			case engine.ActionConfirm:
				m.state = statePlaying
				m.refresh()
			case engine.ActionCancel:
				m.state = stateDeclined
			case engine.ActionQuit:
				return m, tea.Quit
			}
			return m, nil

		case statePlaying:
			if msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown {
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			action := actionFor(msg)
			if action.Kind == engine.ActionQuit {
				m.state = stateFarewell
				return m, nil
			}
			m.engine.HandleAction(action)
			if m.engine.IsFinished() {
				m.state = stateFarewell
				return m, nil
			}
			m.refresh()
			return m, nil

		case stateDeclined, stateFarewell:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = max(msg.Height-6, 3)
		m.refresh()

	case storyChangedMsg:
		m.reload(msg.path)
		return m, m.waitForChange()

	case watchErrMsg:
		m.status = fmt.Sprintf("watch error: %v", msg.err)
		return m, m.waitForChange()
	}

	return m, nil
}

// reload restarts the game from a freshly loaded story. On failure the
// current game keeps running and the error is shown.
func (m *model) reload(path string) {
	game, err := loader.Load(path, m.log)
	if err != nil {
		m.log.Warn("reload failed", zap.String("path", path), zap.Error(err))
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.engine = engine.New(game, m.log)
	m.status = ""
	if m.state == stateFarewell {
		m.state = statePlaying
	}
	m.log.Info("story reloaded", zap.String("path", path))
	m.refresh()
}

func (m model) waitForChange() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return storyChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderStage())
	m.viewport.GotoTop()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateGate:
		s = m.center(
			fmt.Sprintf("You have successfully loaded %q!", m.engine.Name()),
			"Play now? [y]/n",
		)

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderStats(),
		)
		parts := []string{mainView}
		if m.status != "" {
			parts = append(parts, "\n"+statusStyle.Render(m.status))
		}
		parts = append(parts, "\n"+m.help.View(keys))
		s = lipgloss.JoinVertical(lipgloss.Left, parts...)

	case stateDeclined:
		s = m.center("Too bad!", "Press any key to exit.")

	case stateFarewell:
		s = m.center("Thank you for playing!", "Press any key to exit the application.")
	}

	return "\n" + s + "\n"
}

func (m model) center(lines ...string) string {
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 || m.height == 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, block)
}

func (m model) renderStage() string {
	stage := m.engine.CurrentStage()
	width := m.viewport.Width

	var b strings.Builder
	b.WriteString(stageNameStyle.Render(stage.Name))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Width(width).Render(strings.Join(stage.Text, "\n")))
	b.WriteString("\n\n")

	n := 0
	for pos, opt := range m.engine.VisibleOptions(stage) {
		n++
		row := fmt.Sprintf("%d. %s", n, strings.Join(opt.Text, "\n   "))
		if pos == stage.CurrentOption {
			b.WriteString(selectedStyle.Render("- " + row))
		} else {
			b.WriteString(optionStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}
	if n == 0 {
		if stage.IsTerminal() {
			b.WriteString(optionStyle.Render("Press enter to finish."))
		} else {
			b.WriteString(optionStyle.Render("There is nothing you can do here."))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderStats() string {
	content := titleStyle.Render("STATS") + "\n"
	stats := m.engine.Stats()
	if len(stats) == 0 {
		content += "(none)"
	}
	for _, s := range stats {
		content += fmt.Sprintf("%s: %d\n", s.Name, s.Value)
	}

	statsWidth := int(float64(m.width) * 0.23)
	return statsStyle.Width(statsWidth).Height(m.viewport.Height).Render(content)
}

// Run plays eng in the terminal until the player finishes or quits.
func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
