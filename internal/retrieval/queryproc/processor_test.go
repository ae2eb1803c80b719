package queryproc

import (
	"reflect"
	"strings"
	"testing"
)

func TestProcess_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"lowercases", "Find Product Managers", "find product managers"},
		{"collapses whitespace", "find   product\t managers", "find product managers"},
		{"strips punctuation", "figma, slack & jira!", "figma slack jira"},
		{"keeps hyphen and underscore", "on-site tech_lead", "on-site tech_lead"},
		{"empty input", "", ""},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process(tt.query)
			if got.Normalized != tt.want {
				t.Errorf("Normalized = %q, want %q", got.Normalized, tt.want)
			}
		})
	}
}

func TestProcess_SynonymExpansion(t *testing.T) {
	p := New()

	got := p.Process("Find WFH PMs using Figma")
	want := "find wfh remote work from home pms product manager using figma"
	if got.Expanded != want {
		t.Errorf("Expanded = %q, want %q", got.Expanded, want)
	}
}

func TestProcess_MultiWordPhraseWins(t *testing.T) {
	p := New()

	// "work from home" must match as a phrase, not word by word.
	got := p.Process("work from home designer")
	if !strings.HasPrefix(got.Expanded, "work from home remote") {
		t.Errorf("Expanded = %q, want phrase expansion first", got.Expanded)
	}
}

func TestProcess_KeepsOriginalAndExpansion(t *testing.T) {
	p := New()

	got := p.Process("k8s")
	if got.Expanded != "k8s kubernetes" {
		t.Errorf("Expanded = %q, want both original and expansion", got.Expanded)
	}
}

func TestProcess_UnmatchedWordsPassThrough(t *testing.T) {
	p := New()

	got := p.Process("obscure gibberish")
	if got.Expanded != "obscure gibberish" {
		t.Errorf("Expanded = %q, want input unchanged", got.Expanded)
	}
}

func TestProcess_TermsDeduplicatedInOrder(t *testing.T) {
	p := New()

	got := p.Process("remote work remote")
	// "remote work" expands to "remote", "remote" expands to nothing further:
	// expanded = "remote work remote remote" -> terms dedup to [remote work].
	want := []string{"remote", "work"}
	if !reflect.DeepEqual(got.Terms, want) {
		t.Errorf("Terms = %v, want %v", got.Terms, want)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	p := New()

	got := p.Process("")
	if got.Expanded != "" || len(got.Terms) != 0 {
		t.Errorf("empty input should produce empty output, got %+v", got)
	}
}
