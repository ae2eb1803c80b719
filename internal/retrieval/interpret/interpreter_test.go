package interpret

import (
	"reflect"
	"testing"
)

func TestExtract_Remote(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		want    bool
		wantSet bool
	}{
		{"remote keyword", "find remote designers", true, true},
		{"wfh shorthand", "wfh product managers", true, true},
		{"onsite keyword", "onsite engineers", false, true},
		{"office keyword", "people working from an office", false, true},
		{"both mentioned", "remote or onsite managers", false, false},
		{"neither mentioned", "experienced managers", false, false},
	}

	interp := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := interp.Extract(tt.prompt)
			got, ok := f.Remote()
			if ok != tt.wantSet {
				t.Fatalf("Remote() set = %v, want %v", ok, tt.wantSet)
			}
			if ok && got != tt.want {
				t.Errorf("Remote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract_ToolsCanonicalCase(t *testing.T) {
	interp := New()

	_, f := interp.Extract("people using figma and SLACK")
	want := []string{"Slack", "Figma"}

	got := f.Tools()
	if len(got) != 2 {
		t.Fatalf("Tools() = %v, want 2 tools", got)
	}
	for _, tool := range want {
		found := false
		for _, g := range got {
			if g == tool {
				found = true
			}
		}
		if !found {
			t.Errorf("Tools() = %v, missing %q", got, tool)
		}
	}
}

func TestExtract_RoleFirstMatchWins(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"find pms using trello", "Product Manager"},
		{"experienced ux designer", "UX Designer"},
		{"devops person with docker", "DevOps Engineer"},
		{"senior engineer at a startup", "Software Engineer"},
		// "pm" appears before "engineering manager" in the table.
		{"pm or engineering manager", "Product Manager"},
	}

	interp := New()
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			_, f := interp.Extract(tt.prompt)
			got, ok := f.Role()
			if !ok {
				t.Fatalf("no role extracted from %q", tt.prompt)
			}
			if got != tt.want {
				t.Errorf("Role() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_RoleWordBoundary(t *testing.T) {
	interp := New()

	// "pm" inside another word must not match.
	_, f := interp.Extract("2pmm meeting attendees")
	if role, ok := f.Role(); ok {
		t.Errorf("Role() = %q, want unset", role)
	}
}

func TestExtract_TeamSize(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantMin int
		wantMax int
		wantSet bool
	}{
		{"explicit range", "managing 5-10 people", 5, 10, true},
		{"to range", "5 to 10 people", 5, 10, true},
		{"team of N", "leads a team of 7", 7, 7, true},
		{"manage N", "should manage 12 engineers", 12, 12, true},
		{"no mention", "remote designers", 0, 0, false},
	}

	interp := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := interp.Extract(tt.prompt)
			gotMin, okMin := f.MinTeamSize()
			gotMax, okMax := f.MaxTeamSize()
			if okMin != tt.wantSet || okMax != tt.wantSet {
				t.Fatalf("team size set = (%v, %v), want %v", okMin, okMax, tt.wantSet)
			}
			if tt.wantSet && (gotMin != tt.wantMin || gotMax != tt.wantMax) {
				t.Errorf("team size = [%d, %d], want [%d, %d]", gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestExtract_CompanySize(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{"startup keyword", "pm at a startup", []string{"1-10", "10-50", "50-200"}},
		{"enterprise keyword", "enterprise sales manager", []string{"500-1000", "1000+"}},
		{"explicit range", "company with 50-200 employees", []string{"50-200"}},
		{"no mention", "remote designers", nil},
	}

	interp := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := interp.Extract(tt.prompt)
			if !reflect.DeepEqual(f.CompanySizes(), tt.want) {
				t.Errorf("CompanySizes() = %v, want %v", f.CompanySizes(), tt.want)
			}
		})
	}
}

func TestExtract_ExperienceYears(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantMin int
		minSet  bool
		wantMax int
		maxSet  bool
	}{
		{"range", "3-5 years of experience", 3, true, 5, true},
		{"plus", "5+ years experience", 5, true, 0, false},
		{"bare years", "5 years experience", 5, true, 0, false},
		{"with exact", "designer with 3 years", 3, true, 3, true},
		{"no mention", "remote designers", 0, false, 0, false},
	}

	interp := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := interp.Extract(tt.prompt)
			gotMin, okMin := f.MinExperienceYears()
			gotMax, okMax := f.MaxExperienceYears()
			if okMin != tt.minSet || okMax != tt.maxSet {
				t.Fatalf("experience set = (%v, %v), want (%v, %v)", okMin, okMax, tt.minSet, tt.maxSet)
			}
			if okMin && gotMin != tt.wantMin {
				t.Errorf("min experience = %d, want %d", gotMin, tt.wantMin)
			}
			if okMax && gotMax != tt.wantMax {
				t.Errorf("max experience = %d, want %d", gotMax, tt.wantMax)
			}
		})
	}
}

func TestExtract_UnmatchedPromptYieldsEmptyFilters(t *testing.T) {
	interp := New()

	prompt, f := interp.Extract("somebody interesting")
	if prompt != "somebody interesting" {
		t.Errorf("prompt = %q, want unchanged", prompt)
	}
	if !f.IsEmpty() {
		t.Errorf("filters = %+v, want empty", f)
	}
}

func TestExtract_CombinedPrompt(t *testing.T) {
	interp := New()

	_, f := interp.Extract("Find remote PMs using Trello with 3-5 years experience")

	if remote, ok := f.Remote(); !ok || !remote {
		t.Errorf("Remote() = (%v, %v), want (true, true)", remote, ok)
	}
	if role, ok := f.Role(); !ok || role != "Product Manager" {
		t.Errorf("Role() = (%q, %v), want Product Manager", role, ok)
	}
	if tools := f.Tools(); len(tools) != 1 || tools[0] != "Trello" {
		t.Errorf("Tools() = %v, want [Trello]", tools)
	}
	if minExp, ok := f.MinExperienceYears(); !ok || minExp != 3 {
		t.Errorf("MinExperienceYears() = (%d, %v), want 3", minExp, ok)
	}
	if maxExp, ok := f.MaxExperienceYears(); !ok || maxExp != 5 {
		t.Errorf("MaxExperienceYears() = (%d, %v), want 5", maxExp, ok)
	}
}
