package domain

import "fmt"

// Participant is a research-participant profile loaded from the store.
// Immutable for the lifetime of one index build: the retrieval core never
// mutates a profile, it only reads it.
type Participant struct {
	id              string
	name            string
	role            string
	industry        string
	companyName     string
	companySize     string
	remote          bool
	teamSize        int
	experienceYears int
	tools           []string
	skills          []string
	description     string
}

// NewParticipant validates and creates a participant profile.
func NewParticipant(
	id, name, role, industry, companyName, companySize string,
	remote bool, teamSize, experienceYears int,
	tools, skills []string, description string,
) (Participant, error) {
	if id == "" {
		return Participant{}, fmt.Errorf("participant id is required")
	}
	if role == "" {
		return Participant{}, fmt.Errorf("participant role is required")
	}
	if teamSize < 0 {
		return Participant{}, fmt.Errorf("team size must be >= 0, got %d", teamSize)
	}
	if experienceYears < 0 {
		return Participant{}, fmt.Errorf("experience years must be >= 0, got %d", experienceYears)
	}
	return Reconstruct(
		id, name, role, industry, companyName, companySize,
		remote, teamSize, experienceYears, tools, skills, description,
	), nil
}

// Reconstruct creates a participant from already-persisted data without validation.
func Reconstruct(
	id, name, role, industry, companyName, companySize string,
	remote bool, teamSize, experienceYears int,
	tools, skills []string, description string,
) Participant {
	return Participant{
		id:              id,
		name:            name,
		role:            role,
		industry:        industry,
		companyName:     companyName,
		companySize:     companySize,
		remote:          remote,
		teamSize:        teamSize,
		experienceYears: experienceYears,
		tools:           tools,
		skills:          skills,
		description:     description,
	}
}

// ID returns the stable unique identifier.
func (p *Participant) ID() string { return p.id }

// Name returns the display name.
func (p *Participant) Name() string { return p.name }

// Role returns the job role.
func (p *Participant) Role() string { return p.role }

// Industry returns the industry.
func (p *Participant) Industry() string { return p.industry }

// CompanyName returns the employer name.
func (p *Participant) CompanyName() string { return p.companyName }

// CompanySize returns the company-size bucket (e.g. "50-200").
func (p *Participant) CompanySize() string { return p.companySize }

// Remote reports whether the participant works remotely.
func (p *Participant) Remote() bool { return p.remote }

// TeamSize returns the size of the team the participant manages.
func (p *Participant) TeamSize() int { return p.teamSize }

// ExperienceYears returns the years of professional experience.
func (p *Participant) ExperienceYears() int { return p.experienceYears }

// Tools returns the tools in canonical display case.
func (p *Participant) Tools() []string { return p.tools }

// Skills returns the skill list.
func (p *Participant) Skills() []string { return p.skills }

// Description returns the free-text profile description.
func (p *Participant) Description() string { return p.description }
