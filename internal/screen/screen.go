package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnkit/internal/ui/layout"
)

// Screen is one page of the interactive exercise browser.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes own the keyboard,
// for example while a text field is focused. While CapturingInput reports
// true, Esc goes to the screen instead of navigating back.
type InputCapturer interface {
	CapturingInput() bool
}
