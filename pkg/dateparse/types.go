package dateparse

import "time"

// Result holds the outcome of scanning free text for a date/time phrase.
// Start/End are byte offsets into the original text; RecognizedText is the
// exact substring text[Start:End] that expressed the date.
type Result struct {
	Date           time.Time
	RecognizedText string
	Start          int
	End            int
}

// NoMatch returns the sentinel result for text with no recognizable phrase.
func NoMatch() Result {
	return Result{Start: -1, End: -1}
}

// HasMatch reports whether the result carries a recognized phrase.
func (r Result) HasMatch() bool {
	return r.RecognizedText != "" && r.Start >= 0 && r.End > r.Start
}
