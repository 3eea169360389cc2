// Package exercise is the detail screen for one bound exercise: reveal
// the hint or solution and check a JSON submission.
package exercise

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/problem"
	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/session"
	"github.com/abhisek/learnkit/internal/submission"
	"github.com/abhisek/learnkit/internal/ui/components"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

// Results remembers the outcome of the last check per exercise name for
// the lifetime of the TUI. Screens share it by reference.
type Results map[string]bool

type panel int

const (
	panelNone panel = iota
	panelHint
	panelSolution
	panelResult
)

// ExerciseScreen shows one exercise.
type ExerciseScreen struct {
	ns      binder.Namespace
	ex      *binder.Exercise
	results Results

	panel   panel
	text    problem.Text
	message string
	passed  bool

	typing bool
	input  components.TextInput
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)
var _ screen.InputCapturer = (*ExerciseScreen)(nil)

// New creates the screen for ex. ns is used to step to the next exercise.
func New(ns binder.Namespace, ex *binder.Exercise, results Results) *ExerciseScreen {
	return &ExerciseScreen{
		ns:      ns,
		ex:      ex,
		results: results,
		input:   components.NewTextInput(`{"name": value, ...}`, 0),
	}
}

func (s *ExerciseScreen) Init() tea.Cmd {
	return nil
}

func (s *ExerciseScreen) Title() string {
	return s.ex.Name
}

func (s *ExerciseScreen) CapturingInput() bool {
	return s.typing
}

func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "h", Description: "Hint"},
		{Key: "s", Description: "Solution"},
		{Key: "c", Description: "Check"},
		{Key: "n", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.typing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.typing {
		switch kmsg.String() {
		case "enter":
			s.typing = false
			s.submit(s.input.Value())
			return s, nil
		case "esc":
			s.typing = false
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	ctx := context.Background()
	switch kmsg.String() {
	case "h":
		s.reveal(panelHint, s.ex.Hint)
	case "s":
		s.reveal(panelSolution, s.ex.Solution)
	case "c":
		if !s.ex.Checkable() {
			s.check(ctx, problem.Submission{})
			return s, nil
		}
		s.typing = true
		return s, s.input.Reset()
	case "n":
		if next := s.next(); next != nil {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(s.ns, next, s.results)}
			}
		}
	}
	return s, nil
}

func (s *ExerciseScreen) reveal(p panel, get func(context.Context) (problem.Text, error)) {
	text, err := get(context.Background())
	s.panel = p
	s.text = text
	s.message = ""
	if err != nil {
		s.text = problem.Text{}
		s.message = err.Error()
	}
}

func (s *ExerciseScreen) submit(raw string) {
	sub, err := submission.DecodeBytes([]byte(raw))
	if err != nil {
		s.showResult(false, err.Error())
		s.input.Submit(false)
		return
	}
	s.check(context.Background(), sub)
	s.input.Submit(s.passed)
}

func (s *ExerciseScreen) check(ctx context.Context, sub problem.Submission) {
	out, err := s.ex.Check(ctx, sub)
	if err != nil {
		s.showResult(false, err.Error())
		return
	}
	s.results[s.ex.Name] = out.Passed
	s.showResult(out.Passed, out.Message())
}

func (s *ExerciseScreen) showResult(passed bool, msg string) {
	s.panel = panelResult
	s.passed = passed
	s.message = msg
	s.text = problem.Text{}
}

// next returns the exercise after this one in ID order.
func (s *ExerciseScreen) next() *binder.Exercise {
	names := s.ns.Names()
	i := slices.Index(names, s.ex.Name)
	if i < 0 || i+1 >= len(names) {
		return nil
	}
	ex, _ := s.ns.Lookup(names[i+1])
	return ex
}

func (s *ExerciseScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Exercise %d · %s", s.ex.ID, s.ex.Name)))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(Kind(s.ex)))
	b.WriteString("\n\n")

	if vars := s.ex.Vars(); len(vars) > 0 {
		b.WriteString(theme.Body.Render("Variables: " + strings.Join(vars, ", ")))
		b.WriteString("\n")
	}
	if r := s.ex.Revealed(); r != session.RevealNone {
		b.WriteString(theme.Revealed.Render(r.String() + " shown"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bodyWidth := max(width-4, 20)
	switch s.panel {
	case panelHint, panelSolution:
		heading := "Hint"
		if s.panel == panelSolution {
			heading = "Solution"
		}
		b.WriteString(theme.Selected.Render(heading))
		b.WriteString("\n")
		if s.message != "" {
			b.WriteString(theme.Hint.Render(s.message))
		} else {
			b.WriteString(RenderText(s.text, bodyWidth))
		}
		b.WriteString("\n")
	case panelResult:
		style := theme.Incorrect
		if s.passed {
			style = theme.Correct
		}
		b.WriteString(style.Width(bodyWidth).Render(s.message))
		b.WriteString("\n")
	}

	if s.typing {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Submission (JSON):"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(b.String())
}

// Kind describes the exercise for listings.
func Kind(ex *binder.Exercise) string {
	if ex.Checkable() {
		return "checked exercise"
	}
	return "thought experiment"
}

// RenderText renders a hint or solution. Code samples are framed.
func RenderText(t problem.Text, width int) string {
	if t.Code {
		return theme.Code.Render(t.Body)
	}
	return theme.Body.Width(width).Render(t.Body)
}
