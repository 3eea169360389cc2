package problem

// ThoughtExperiment is an open-ended question with no checkable answer.
// It only carries a hint and a solution.
type ThoughtExperiment struct {
	content
}

var _ Problem = (*ThoughtExperiment)(nil)

// NewThoughtExperiment creates a thought experiment. Either text may be empty.
func NewThoughtExperiment(hint, solution Text) *ThoughtExperiment {
	return &ThoughtExperiment{content: content{hint: hint, solution: solution}}
}

func (t *ThoughtExperiment) Vars() []string { return nil }

// Check always passes.
func (t *ThoughtExperiment) Check(Submission) (Outcome, error) {
	return Pass(), nil
}
