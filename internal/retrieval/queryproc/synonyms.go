package queryproc

// maxPhraseWords bounds the multi-word phrase scan during expansion.
const maxPhraseWords = 4

// synonyms maps abbreviations and shorthand to their expanded forms. Expansion
// emits both the original phrase and the expansion, so a query keeps matching
// documents that use either spelling.
var synonyms = map[string]string{
	// Roles
	"pm":     "product manager",
	"pms":    "product manager",
	"ux":     "user experience",
	"ui":     "user interface",
	"dev":    "developer",
	"eng":    "engineer",
	"qa":     "quality assurance",
	"devops": "development operations",
	"swe":    "software engineer",
	"fe":     "frontend",
	"be":     "backend",

	// Work arrangements
	"wfh":            "remote work from home",
	"work from home": "remote",
	"remote work":    "remote",
	"telecommute":    "remote",

	// Seniority
	"sr":   "senior",
	"jr":   "junior",
	"lead": "senior lead",

	// Tool abbreviations
	"js":  "javascript",
	"ts":  "typescript",
	"k8s": "kubernetes",
	"aws": "amazon web services",
	"gcp": "google cloud platform",
}
