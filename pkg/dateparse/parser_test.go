package dateparse_test

import (
	"strings"
	"testing"
	"time"

	"todopad/pkg/dateparse"
)

// stubGrammar returns a fixed match, or nothing when Found is false.
type stubGrammar struct {
	found bool
	match dateparse.Match
}

func (g stubGrammar) Parse(text string, base time.Time) (dateparse.Match, bool) {
	if !g.found {
		return dateparse.Match{}, false
	}
	return g.match, true
}

func newTestParser(t *testing.T, g dateparse.Grammar) *dateparse.Parser {
	t.Helper()
	p, err := dateparse.NewParser("UTC", g)
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	return p.WithClock(func() time.Time { return base })
}

func TestNewParser(t *testing.T) {
	if _, err := dateparse.NewParser("Europe/Berlin", nil); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	if _, err := dateparse.NewParser("Invalid/Timezone", nil); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse_GrammarTier(t *testing.T) {
	match := dateparse.Match{
		Text:  "next friday",
		Index: 9,
		Time:  time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	}
	p := newTestParser(t, stubGrammar{found: true, match: match})

	got := p.Parse("Call Bob next friday please")
	if !got.HasMatch() {
		t.Fatalf("expected a match")
	}
	if got.RecognizedText != "next friday" || got.Start != 9 || got.End != 20 {
		t.Errorf("unexpected span: %q [%d,%d)", got.RecognizedText, got.Start, got.End)
	}
	if !got.Date.Equal(match.Time) {
		t.Errorf("Date got %v, want %v", got.Date, match.Time)
	}
}

func TestParse_GrammarBadSpanFallsThrough(t *testing.T) {
	// Grammar reports a span that does not line up with the input text;
	// the parser must not trust it and must consult the keyword table.
	match := dateparse.Match{Text: "friday", Index: 40}
	p := newTestParser(t, stubGrammar{found: true, match: match})

	got := p.Parse("finish today")
	if got.RecognizedText != "today" {
		t.Fatalf("expected keyword fallback, got %q", got.RecognizedText)
	}
}

func TestParse_KeywordTable(t *testing.T) {
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		wantText string
		wantDate time.Time
	}{
		{
			name:     "today",
			text:     "finish report today",
			wantText: "today",
			wantDate: base,
		},
		{
			name:     "tom short form",
			text:     "lunch tom",
			wantText: "tom",
			wantDate: base.AddDate(0, 0, 1),
		},
		{
			name:     "tom shadows tomorrow",
			text:     "pay rent tomorrow",
			wantText: "tom",
			wantDate: base.AddDate(0, 0, 1),
		},
		{
			name:     "next week",
			text:     "review next week",
			wantText: "next week",
			wantDate: base.AddDate(0, 0, 7),
		},
		{
			name:     "next month",
			text:     "renew next month",
			wantText: "next month",
			wantDate: base.AddDate(0, 1, 0),
		},
		{
			name:     "next year",
			text:     "taxes next year",
			wantText: "next year",
			wantDate: base.AddDate(1, 0, 0),
		},
		{
			name:     "case insensitive with original-cased span",
			text:     "submit TODAY",
			wantText: "TODAY",
			wantDate: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, stubGrammar{})
			got := p.Parse(tt.text)
			if !got.HasMatch() {
				t.Fatalf("expected a match for %q", tt.text)
			}
			if got.RecognizedText != tt.wantText {
				t.Errorf("RecognizedText got %q, want %q", got.RecognizedText, tt.wantText)
			}
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("Date got %v, want %v", got.Date, tt.wantDate)
			}
		})
	}
}

func TestParse_KeywordTableOrder(t *testing.T) {
	// Table declaration order wins, not leftmost-in-text: "tomorrow" occurs
	// after "today" in the table, so "today" is chosen even though
	// "tomorrow" appears first in the text.
	p := newTestParser(t, stubGrammar{})

	got := p.Parse("tomorrow and today")
	if got.RecognizedText != "today" {
		t.Fatalf("table order must win: got %q, want %q", got.RecognizedText, "today")
	}
	if got.Start != 13 || got.End != 18 {
		t.Errorf("unexpected span [%d,%d)", got.Start, got.End)
	}
}

func TestParse_SpanInvariant(t *testing.T) {
	p := newTestParser(t, stubGrammar{})

	inputs := []string{
		"",
		"no date here",
		"today",
		"meet tom at the office",
		"NEXT WEEK planning",
		"groceries next month maybe next year",
		"Überweisung today", // multibyte prefix must not skew offsets
	}

	for _, text := range inputs {
		got := p.Parse(text)
		if !got.HasMatch() {
			if got.Start != -1 || got.End != -1 || got.RecognizedText != "" || !got.Date.IsZero() {
				t.Errorf("%q: no-match result must be the sentinel, got %+v", text, got)
			}
			continue
		}
		if got.Start < 0 || got.End <= got.Start || got.End > len(text) {
			t.Errorf("%q: span out of bounds [%d,%d)", text, got.Start, got.End)
			continue
		}
		if text[got.Start:got.End] != got.RecognizedText {
			t.Errorf("%q: span mismatch %q != %q",
				text, text[got.Start:got.End], got.RecognizedText)
		}
	}
}

func TestParse_EmptyAndNoMatch(t *testing.T) {
	p := newTestParser(t, stubGrammar{})

	for _, text := range []string{"", "buy milk", "nothing datelike at all"} {
		if got := p.Parse(text); got.HasMatch() {
			t.Errorf("%q: expected no match, got %+v", text, got)
		}
	}
}

func TestWhenGrammar(t *testing.T) {
	g := dateparse.NewWhenGrammar()
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	m, ok := g.Parse("buy milk tomorrow", base)
	if !ok {
		t.Fatalf("expected the grammar to recognize 'tomorrow'")
	}
	if !strings.Contains(strings.ToLower(m.Text), "tomorrow") {
		t.Errorf("unexpected matched text %q", m.Text)
	}
	if !m.Time.After(base) {
		t.Errorf("resolved time %v should be after base %v", m.Time, base)
	}

	if _, ok := g.Parse("completely datefree text", base); ok {
		t.Errorf("expected no match for datefree text")
	}
}
