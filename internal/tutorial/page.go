package tutorial

import "github.com/mentimath/mentimath/internal/plot"

// Page is the output of one render pass.
type Page struct {
	Heading string
	Intro   string

	// Figure is nil when the pass stopped early on a validation error.
	Figure *plot.Figure

	// Facts are short computed readouts shown under the figure.
	Facts []string

	// Notice is a highlighted message, e.g. "The triangles are congruent!".
	Notice string

	Outro string

	// Err is a user-facing validation error; the pass aborted early.
	Err error
}

// ErrMessage returns the learner-facing text for Err, or "".
func (p Page) ErrMessage() string {
	if p.Err == nil {
		return ""
	}
	if m, ok := p.Err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return p.Err.Error()
}
