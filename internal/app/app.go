// Package app wires the screens into a Bubble Tea program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/screens/exercises"
	"github.com/abhisek/learnkit/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	list      *exercises.ListScreen
	sessionID string
	width     int
	height    int
}

// NewAppModel creates the model with the exercise list as root screen.
func NewAppModel(heading string, ns binder.Namespace, sessionID string) AppModel {
	list := exercises.New(heading, ns)
	return AppModel{
		router:    router.New(list),
		list:      list,
		sessionID: sessionID,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is the header's right-hand side: score and short session ID.
func (m AppModel) status() string {
	id := m.sessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("✓ %d   session %s", m.list.Passed(), id)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(heading string, ns binder.Namespace, sessionID string) error {
	p := tea.NewProgram(NewAppModel(heading, ns, sessionID))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
