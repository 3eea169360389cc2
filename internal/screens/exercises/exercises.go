// Package exercises is the root screen: every bound exercise with its
// session state.
package exercises

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/screens/exercise"
	"github.com/abhisek/learnkit/internal/session"
	"github.com/abhisek/learnkit/internal/ui/components"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

// ListScreen lists the exercises in ID order.
type ListScreen struct {
	heading string
	ns      binder.Namespace
	results exercise.Results
	menu    components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the list over ns. heading names the course or lesson.
func New(heading string, ns binder.Namespace) *ListScreen {
	s := &ListScreen{
		heading: heading,
		ns:      ns,
		results: exercise.Results{},
	}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Exercises"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Results exposes the check results shared with the exercise screens.
func (s *ListScreen) Results() exercise.Results {
	return s.results
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ListScreen) items() []components.MenuItem {
	exs := s.ns.Exercises()
	items := make([]components.MenuItem, 0, len(exs))
	for _, ex := range exs {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%-6s %s", ex.Name, exercise.Kind(ex)),
			Detail: s.status(ex),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: exercise.New(s.ns, ex, s.results)}
				}
			},
		})
	}
	return items
}

func (s *ListScreen) status(ex *binder.Exercise) string {
	var parts []string
	if passed, ok := s.results[ex.Name]; ok {
		if passed {
			parts = append(parts, theme.Correct.Render("✓ passed"))
		} else {
			parts = append(parts, theme.Incorrect.Render("✗ failed"))
		}
	}
	if r := ex.Revealed(); r != session.RevealNone {
		parts = append(parts, theme.Revealed.Render(r.String()+" shown"))
	}
	return strings.Join(parts, "  ")
}

// Passed counts exercises whose last check passed.
func (s *ListScreen) Passed() int {
	n := 0
	for _, ok := range s.results {
		if ok {
			n++
		}
	}
	return n
}

func (s *ListScreen) View(width, height int) string {
	// Session state may have changed on an exercise screen.
	s.menu.SetItems(s.items())

	total := len(s.ns)
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.heading))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d exercises", total)))
	b.WriteString("\n\n")

	b.WriteString(components.NewProgressBar("Passed", s.Passed(), total, min(width-4, 60)).View())
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(b.String())
}
