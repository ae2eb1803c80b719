package chi

import (
	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/domain/search/result"
	searchuc "github.com/recruitr-hq/recruitr/internal/usecase/search"
)

// errorCode is the machine-readable error discriminator in error responses.
type errorCode string

const (
	codeBadRequest            errorCode = "bad_request"
	codeValidationFailed      errorCode = "validation_failed"
	codeUnauthorized          errorCode = "unauthorized"
	codeParticipantNotFound   errorCode = "participant_not_found"
	codeRateLimited           errorCode = "rate_limited"
	codeEmbeddingProviderErr  errorCode = "embedding_provider_error"
	codeSearchIndexNotReady   errorCode = "search_index_not_ready"
	codeSearchUnavailable     errorCode = "search_unavailable"
	codeInternalError         errorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// filtersDTO is the wire form of filter.Filters. All keys optional; absent
// means "no constraint".
type filtersDTO struct {
	Remote             *bool     `json:"remote,omitempty"`
	Tools              *[]string `json:"tools,omitempty"`
	Role               *string   `json:"role,omitempty"`
	MinTeamSize        *int      `json:"min_team_size,omitempty"`
	MaxTeamSize        *int      `json:"max_team_size,omitempty"`
	CompanySizes       *[]string `json:"company_size,omitempty"`
	MinExperienceYears *int      `json:"min_experience_years,omitempty"`
	MaxExperienceYears *int      `json:"max_experience_years,omitempty"`
}

type searchRequestDTO struct {
	Query   string      `json:"query"`
	TopK    *int        `json:"top_k,omitempty"`
	Filters *filtersDTO `json:"filters,omitempty"`
}

type participantDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Industry        string   `json:"industry"`
	CompanyName     string   `json:"company_name"`
	CompanySize     string   `json:"company_size"`
	Remote          bool     `json:"remote"`
	TeamSize        int      `json:"team_size"`
	ExperienceYears int      `json:"experience_years"`
	Tools           []string `json:"tools"`
	Skills          []string `json:"skills"`
	Description     string   `json:"description"`
}

type searchResultDTO struct {
	Participant  participantDTO `json:"participant"`
	Score        float64        `json:"score"`
	Rank         int            `json:"rank"`
	Method       string         `json:"method"`
	MatchReasons []string       `json:"match_reasons"`
}

type searchResponseDTO struct {
	Query           string            `json:"query"`
	ExpandedQuery   string            `json:"expanded_query"`
	Results         []searchResultDTO `json:"results"`
	Count           int               `json:"count"`
	RetrievalTimeMs float64           `json:"retrieval_time_ms"`
	Method          string            `json:"method"`
	FiltersApplied  filtersDTO        `json:"filters_applied"`
}

type reloadResponseDTO struct {
	Status       string `json:"status"`
	Participants int    `json:"participants"`
}

type healthResponseDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func filtersFromDTO(d *filtersDTO) filter.Filters {
	f := filter.New()
	if d == nil {
		return f
	}
	if d.Remote != nil {
		f = f.WithRemote(*d.Remote)
	}
	if d.Tools != nil && len(*d.Tools) > 0 {
		f = f.WithTools(*d.Tools)
	}
	if d.Role != nil && *d.Role != "" {
		f = f.WithRole(*d.Role)
	}
	if d.MinTeamSize != nil {
		f = f.WithMinTeamSize(*d.MinTeamSize)
	}
	if d.MaxTeamSize != nil {
		f = f.WithMaxTeamSize(*d.MaxTeamSize)
	}
	if d.CompanySizes != nil && len(*d.CompanySizes) > 0 {
		f = f.WithCompanySizes(*d.CompanySizes)
	}
	if d.MinExperienceYears != nil {
		f = f.WithMinExperienceYears(*d.MinExperienceYears)
	}
	if d.MaxExperienceYears != nil {
		f = f.WithMaxExperienceYears(*d.MaxExperienceYears)
	}
	return f
}

func filtersToDTO(f filter.Filters) filtersDTO {
	var d filtersDTO
	if v, ok := f.Remote(); ok {
		d.Remote = &v
	}
	if tools := f.Tools(); len(tools) > 0 {
		d.Tools = &tools
	}
	if v, ok := f.Role(); ok {
		d.Role = &v
	}
	if v, ok := f.MinTeamSize(); ok {
		d.MinTeamSize = &v
	}
	if v, ok := f.MaxTeamSize(); ok {
		d.MaxTeamSize = &v
	}
	if sizes := f.CompanySizes(); len(sizes) > 0 {
		d.CompanySizes = &sizes
	}
	if v, ok := f.MinExperienceYears(); ok {
		d.MinExperienceYears = &v
	}
	if v, ok := f.MaxExperienceYears(); ok {
		d.MaxExperienceYears = &v
	}
	return d
}

func participantToDTO(p domain.Participant) participantDTO {
	return participantDTO{
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

func searchResultToDTO(r *result.Result) searchResultDTO {
	return searchResultDTO{
		Participant:  participantToDTO(r.Participant()),
		Score:        r.Score(),
		Rank:         r.Rank(),
		Method:       r.Method(),
		MatchReasons: r.MatchReasons(),
	}
}

func searchResponseToDTO(resp *searchuc.Response) searchResponseDTO {
	results := make([]searchResultDTO, len(resp.Results))
	for i := range resp.Results {
		results[i] = searchResultToDTO(&resp.Results[i])
	}
	return searchResponseDTO{
		Query:           resp.Query,
		ExpandedQuery:   resp.ExpandedQuery,
		Results:         results,
		Count:           resp.Count,
		RetrievalTimeMs: resp.RetrievalTimeMs,
		Method:          resp.Method,
		FiltersApplied:  filtersToDTO(resp.FiltersApplied),
	}
}
