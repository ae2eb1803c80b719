package participant

import "github.com/recruitr-hq/recruitr/internal/domain"

// participantDoc is the JSON shape stored in Redis.
type participantDoc struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Role            string   `json:"role"`
	Industry        string   `json:"industry,omitempty"`
	CompanyName     string   `json:"company_name,omitempty"`
	CompanySize     string   `json:"company_size,omitempty"`
	Remote          bool     `json:"remote"`
	TeamSize        int      `json:"team_size,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Tools           []string `json:"tools,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func fromDomain(p *domain.Participant) participantDoc {
	return participantDoc{
		ID:              p.ID(),
		Name:            p.Name(),
		Role:            p.Role(),
		Industry:        p.Industry(),
		CompanyName:     p.CompanyName(),
		CompanySize:     p.CompanySize(),
		Remote:          p.Remote(),
		TeamSize:        p.TeamSize(),
		ExperienceYears: p.ExperienceYears(),
		Tools:           p.Tools(),
		Skills:          p.Skills(),
		Description:     p.Description(),
	}
}

// toDomain rebuilds the domain participant. The key-derived id wins over the
// stored one.
func (d participantDoc) toDomain(id string) domain.Participant {
	if id == "" {
		id = d.ID
	}
	return domain.Reconstruct(
		id, d.Name, d.Role, d.Industry, d.CompanyName, d.CompanySize,
		d.Remote, d.TeamSize, d.ExperienceYears, d.Tools, d.Skills, d.Description,
	)
}
