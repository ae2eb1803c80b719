package interpret

// roleEntry maps a query keyword to a canonical role name.
type roleEntry struct {
	keyword string
	role    string
}

// roleTable is scanned in order; the first keyword that matches wins. The
// order is a fixed contract, not an implementation accident: more specific
// spellings of a role sit next to their abbreviations, and earlier entries
// shadow later ones.
var roleTable = []roleEntry{
	{"pm", "Product Manager"},
	{"pms", "Product Manager"},
	{"product manager", "Product Manager"},
	{"ux", "UX Designer"},
	{"ux designer", "UX Designer"},
	{"ui designer", "UI Designer"},
	{"designer", "UX Designer"},
	{"dev", "Software Engineer"},
	{"developer", "Software Engineer"},
	{"engineer", "Software Engineer"},
	{"software engineer", "Software Engineer"},
	{"em", "Engineering Manager"},
	{"eng manager", "Engineering Manager"},
	{"engineering manager", "Engineering Manager"},
	{"ds", "Data Scientist"},
	{"data scientist", "Data Scientist"},
	{"project manager", "Project Manager"},
	{"marketing manager", "Marketing Manager"},
	{"customer success manager", "Customer Success Manager"},
	{"sales manager", "Sales Manager"},
	{"frontend", "Frontend Engineer"},
	{"backend", "Backend Engineer"},
	{"fullstack", "Full Stack Engineer"},
	{"qa", "QA Engineer"},
	{"devops", "DevOps Engineer"},
}

// toolCatalog lists known tools in canonical display case. Matching is
// case-insensitive; the catalog spelling is what ends up in the filter.
var toolCatalog = []string{
	"Trello", "Asana", "Jira", "Notion", "Monday.com", "ClickUp",
	"Slack", "Microsoft Teams", "Zoom", "Google Meet",
	"Figma", "Sketch", "Adobe XD", "InVision",
	"GitHub", "GitLab", "Bitbucket",
	"Salesforce", "HubSpot", "Intercom",
	"Google Analytics", "Mixpanel", "Amplitude",
	"Airtable", "Coda", "Confluence",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"React", "Vue", "Angular", "Python", "JavaScript",
}

// companySizeEntry maps a size keyword to the bucket set it implies.
type companySizeEntry struct {
	keyword string
	buckets []string
}

// companySizeTable is scanned in order; the first keyword present wins.
var companySizeTable = []companySizeEntry{
	{"small", []string{"1-10", "10-50"}},
	{"medium", []string{"50-200", "200-500"}},
	{"large", []string{"500-1000", "1000+"}},
	{"startup", []string{"1-10", "10-50", "50-200"}},
	{"enterprise", []string{"500-1000", "1000+"}},
}

// remoteKeywords indicate a remote-work preference.
var remoteKeywords = []string{"remote", "work from home", "wfh", "distributed", "telecommute"}

// onsiteKeywords indicate an onsite preference.
var onsiteKeywords = []string{"onsite", "on-site", "office", "in-person", "on site"}
