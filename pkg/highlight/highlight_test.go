package highlight_test

import (
	"testing"
	"time"

	"todopad/pkg/dateparse"
	"todopad/pkg/highlight"
)

type fixedGrammar struct{}

func (fixedGrammar) Parse(text string, base time.Time) (dateparse.Match, bool) {
	return dateparse.Match{}, false
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		match dateparse.Result
		want  highlight.Segments
	}{
		{
			name:  "no match sentinel",
			text:  "buy milk",
			match: dateparse.NoMatch(),
			want:  highlight.Segments{Prefix: "buy milk"},
		},
		{
			name: "match in the middle",
			text: "call mom tomorrow evening",
			match: dateparse.Result{
				RecognizedText: "tomorrow", Start: 9, End: 17,
			},
			want: highlight.Segments{
				Prefix:      "call mom ",
				Highlighted: "tomorrow",
				Suffix:      " evening",
			},
		},
		{
			name: "match at the end",
			text: "buy milk tomorrow",
			match: dateparse.Result{
				RecognizedText: "tomorrow", Start: 9, End: 17,
			},
			want: highlight.Segments{
				Prefix:      "buy milk ",
				Highlighted: "tomorrow",
			},
		},
		{
			name: "stale end clamps to text length",
			text: "buy milk tom",
			match: dateparse.Result{
				RecognizedText: "tomorrow", Start: 9, End: 17,
			},
			want: highlight.Segments{
				Prefix:      "buy milk ",
				Highlighted: "tom",
			},
		},
		{
			name: "span collapses after clamping",
			text: "buy",
			match: dateparse.Result{
				RecognizedText: "tomorrow", Start: 9, End: 17,
			},
			want: highlight.Segments{Prefix: "buy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := highlight.Render(tt.text, tt.match)
			if got != tt.want {
				t.Errorf("Render() got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRender_MatchesParserOutput(t *testing.T) {
	// Whenever the parser reports a match, the highlighted segment must be
	// exactly the recognized text.
	p, err := dateparse.NewParser("UTC", fixedGrammar{})
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	inputs := []string{
		"water plants today",
		"rent is due next month",
		"dentist tom morning",
		"no date in this one",
	}

	for _, text := range inputs {
		res := p.Parse(text)
		seg := highlight.Render(text, res)
		if res.HasMatch() {
			if seg.Highlighted != res.RecognizedText {
				t.Errorf("%q: highlighted %q, want %q", text, seg.Highlighted, res.RecognizedText)
			}
			if seg.Prefix+seg.Highlighted+seg.Suffix != text {
				t.Errorf("%q: segments do not reassemble the input", text)
			}
		} else {
			if seg.Prefix != text || seg.Highlighted != "" || seg.Suffix != "" {
				t.Errorf("%q: expected passthrough, got %+v", text, seg)
			}
		}
	}
}
