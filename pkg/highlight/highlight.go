// Package highlight splits text around a recognized date phrase so callers
// can render the phrase distinctly (an input overlay, a TUI style, ...).
// It is a pure presentation helper, decoupled from parsing.
package highlight

import "todopad/pkg/dateparse"

// Segments is the three-part rendering of a text with one highlighted span.
type Segments struct {
	Prefix      string
	Highlighted string
	Suffix      string
}

// Render splits text at the match's span. With no match the whole text is
// the prefix.
//
// The span may be stale relative to text (the user kept typing after the
// match was computed): End is clamped to len(text), and a span that
// collapses after clamping is treated as no match. Render never fails.
func Render(text string, m dateparse.Result) Segments {
	if !m.HasMatch() {
		return Segments{Prefix: text}
	}

	start, end := m.Start, m.End
	if end > len(text) {
		end = len(text)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return Segments{Prefix: text}
	}

	return Segments{
		Prefix:      text[:start],
		Highlighted: text[start:end],
		Suffix:      text[end:],
	}
}
