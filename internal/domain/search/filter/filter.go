package filter

import (
	"strings"

	"github.com/recruitr-hq/recruitr/internal/domain"
)

// Filters is the structured predicate set applied to retrieval. Every field is
// optional; the zero value means "no constraint", never "exclude all".
type Filters struct {
	remote        *bool
	tools         []string
	role          string
	minTeamSize   *int
	maxTeamSize   *int
	companySizes  []string
	minExperience *int
	maxExperience *int
}

// New creates an empty filter set.
func New() Filters { return Filters{} }

// WithRemote sets the remote/onsite predicate.
func (f Filters) WithRemote(remote bool) Filters {
	f.remote = &remote
	return f
}

// WithTools sets the required tools (conjunctive, canonical display case).
func (f Filters) WithTools(tools []string) Filters {
	f.tools = tools
	return f
}

// WithRole sets the role predicate.
func (f Filters) WithRole(role string) Filters {
	f.role = role
	return f
}

// WithMinTeamSize sets the inclusive lower team-size bound.
func (f Filters) WithMinTeamSize(n int) Filters {
	f.minTeamSize = &n
	return f
}

// WithMaxTeamSize sets the inclusive upper team-size bound.
func (f Filters) WithMaxTeamSize(n int) Filters {
	f.maxTeamSize = &n
	return f
}

// WithCompanySizes sets the accepted company-size buckets (disjunctive).
func (f Filters) WithCompanySizes(sizes []string) Filters {
	f.companySizes = sizes
	return f
}

// WithMinExperienceYears sets the inclusive lower experience bound.
func (f Filters) WithMinExperienceYears(n int) Filters {
	f.minExperience = &n
	return f
}

// WithMaxExperienceYears sets the inclusive upper experience bound.
func (f Filters) WithMaxExperienceYears(n int) Filters {
	f.maxExperience = &n
	return f
}

// Remote returns the remote predicate and whether it is set.
func (f Filters) Remote() (bool, bool) {
	if f.remote == nil {
		return false, false
	}
	return *f.remote, true
}

// Tools returns the required tools; empty means unset.
func (f Filters) Tools() []string { return f.tools }

// Role returns the role predicate and whether it is set.
func (f Filters) Role() (string, bool) { return f.role, f.role != "" }

// MinTeamSize returns the lower team-size bound and whether it is set.
func (f Filters) MinTeamSize() (int, bool) {
	if f.minTeamSize == nil {
		return 0, false
	}
	return *f.minTeamSize, true
}

// MaxTeamSize returns the upper team-size bound and whether it is set.
func (f Filters) MaxTeamSize() (int, bool) {
	if f.maxTeamSize == nil {
		return 0, false
	}
	return *f.maxTeamSize, true
}

// CompanySizes returns the accepted company-size buckets; empty means unset.
func (f Filters) CompanySizes() []string { return f.companySizes }

// MinExperienceYears returns the lower experience bound and whether it is set.
func (f Filters) MinExperienceYears() (int, bool) {
	if f.minExperience == nil {
		return 0, false
	}
	return *f.minExperience, true
}

// MaxExperienceYears returns the upper experience bound and whether it is set.
func (f Filters) MaxExperienceYears() (int, bool) {
	if f.maxExperience == nil {
		return 0, false
	}
	return *f.maxExperience, true
}

// IsEmpty reports whether no predicate is set.
func (f Filters) IsEmpty() bool {
	return f.remote == nil &&
		len(f.tools) == 0 &&
		f.role == "" &&
		f.minTeamSize == nil &&
		f.maxTeamSize == nil &&
		len(f.companySizes) == 0 &&
		f.minExperience == nil &&
		f.maxExperience == nil
}

// Merge overlays explicit filters on top of f. On key collision the explicit
// value wins; keys unset in explicit keep the value from f.
func (f Filters) Merge(explicit Filters) Filters {
	merged := f
	if explicit.remote != nil {
		merged.remote = explicit.remote
	}
	if len(explicit.tools) > 0 {
		merged.tools = explicit.tools
	}
	if explicit.role != "" {
		merged.role = explicit.role
	}
	if explicit.minTeamSize != nil {
		merged.minTeamSize = explicit.minTeamSize
	}
	if explicit.maxTeamSize != nil {
		merged.maxTeamSize = explicit.maxTeamSize
	}
	if len(explicit.companySizes) > 0 {
		merged.companySizes = explicit.companySizes
	}
	if explicit.minExperience != nil {
		merged.minExperience = explicit.minExperience
	}
	if explicit.maxExperience != nil {
		merged.maxExperience = explicit.maxExperience
	}
	return merged
}

// Matches reports whether a participant satisfies every set predicate.
func (f Filters) Matches(p *domain.Participant) bool {
	if f.remote != nil && p.Remote() != *f.remote {
		return false
	}

	// Tools are conjunctive: every required tool must be present (case-insensitive).
	if len(f.tools) > 0 {
		have := make(map[string]bool, len(p.Tools()))
		for _, t := range p.Tools() {
			have[strings.ToLower(t)] = true
		}
		for _, required := range f.tools {
			if !have[strings.ToLower(required)] {
				return false
			}
		}
	}

	// Role is a bidirectional case-insensitive substring match.
	if f.role != "" {
		pRole := strings.ToLower(p.Role())
		fRole := strings.ToLower(f.role)
		if !strings.Contains(pRole, fRole) && !strings.Contains(fRole, pRole) {
			return false
		}
	}

	if f.minTeamSize != nil && p.TeamSize() < *f.minTeamSize {
		return false
	}
	if f.maxTeamSize != nil && p.TeamSize() > *f.maxTeamSize {
		return false
	}

	if len(f.companySizes) > 0 {
		found := false
		for _, size := range f.companySizes {
			if p.CompanySize() == size {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.minExperience != nil && p.ExperienceYears() < *f.minExperience {
		return false
	}
	if f.maxExperience != nil && p.ExperienceYears() > *f.maxExperience {
		return false
	}

	return true
}
