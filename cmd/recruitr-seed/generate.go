package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/recruitr-hq/recruitr/internal/domain"
)

// Pools for synthetic profile generation.
var (
	firstNames = []string{
		"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
		"Quinn", "Cameron", "Skyler", "Emerson", "Dakota", "Rowan", "Sage", "River",
	}

	lastNames = []string{
		"Chen", "Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Martinez",
		"Rodriguez", "Davis", "Miller", "Anderson", "Taylor", "Thomas", "Lee", "Patel",
	}

	roles = []string{
		"Product Manager", "Software Engineer", "UX Designer", "Product Designer",
		"Engineering Manager", "Data Scientist", "Project Manager",
		"Account Manager", "Operations Manager", "Business Analyst", "Strategy Consultant",
		"Marketing Manager", "Content Marketing Manager", "Sales Manager",
		"Customer Success Manager", "Brand Manager",
		"Nurse Practitioner", "Medical Director", "Clinical Coordinator", "Healthcare Administrator",
		"Curriculum Developer", "Academic Advisor", "Program Director", "Instructional Designer",
		"Financial Analyst", "Accountant", "Investment Manager", "Finance Manager",
		"Program Manager", "Grant Writer", "Community Organizer", "Development Director",
		"Content Creator", "Copywriter", "Brand Strategist", "Creative Director",
		"Store Manager", "Merchandiser", "Supply Chain Coordinator", "Inventory Manager",
	}

	industries = []string{
		"SaaS", "E-commerce", "Fintech", "Healthcare", "Education",
		"Enterprise Software", "Consumer Apps", "Marketing Tech", "Developer Tools",
		"Productivity", "Consulting", "Non-Profit", "Retail", "Manufacturing",
		"Real Estate", "Media & Publishing", "Hospitality", "Financial Services",
		"Pharmaceuticals", "Telecommunications",
	}

	companySizes = []string{"1-10", "10-50", "50-200", "200-500", "500-1000", "1000+"}

	tools = []string{
		"Trello", "Asana", "Jira", "Notion", "Monday.com", "ClickUp",
		"Slack", "Microsoft Teams", "Zoom", "Google Meet",
		"Figma", "Sketch", "Adobe XD", "InVision", "Canva",
		"GitHub", "GitLab", "Bitbucket",
		"Salesforce", "HubSpot", "Intercom", "Mailchimp", "Marketo",
		"Google Analytics", "Mixpanel", "Amplitude", "Tableau", "Power BI",
		"Airtable", "Coda", "Confluence", "Google Workspace", "Microsoft Office",
		"QuickBooks", "Xero", "SAP", "Oracle Financials",
		"Epic", "Cerner", "MEDITECH",
		"Canvas", "Blackboard", "Moodle", "Google Classroom",
		"Workday", "BambooHR", "Greenhouse", "Lever",
		"Shopify", "WooCommerce", "Square", "NetSuite",
	}

	skills = []string{
		"Product Strategy", "Roadmap Planning", "User Research", "Data Analysis",
		"Project Management", "Agile/Scrum", "UX Design", "UI Design",
		"Prototyping", "A/B Testing", "SQL", "Python", "JavaScript",
		"Leadership", "Communication", "Stakeholder Management", "Team Building",
		"Conflict Resolution", "Change Management",
		"Strategic Planning", "Business Development", "Market Research", "Competitive Analysis",
		"Financial Modeling", "Budget Management", "Process Improvement",
		"Content Strategy", "SEO/SEM", "Social Media Marketing", "Brand Development",
		"Copywriting", "Graphic Design", "Video Production",
		"Sales Strategy", "Negotiation", "Account Management", "Customer Retention",
		"Relationship Building",
		"Patient Care", "Clinical Research", "Healthcare Compliance", "Medical Terminology",
		"Curriculum Design", "Educational Technology", "Assessment Development",
		"Financial Analysis", "Accounting", "Tax Planning", "Audit", "Risk Management",
		"Supply Chain Management", "Inventory Control", "Quality Assurance", "Logistics",
	}

	commonTools = []string{"Slack", "Zoom", "Google Meet"}

	roleTools = map[string][]string{
		"UX Designer":         {"Figma", "Sketch", "Adobe XD", "InVision"},
		"Product Designer":    {"Figma", "Sketch", "Adobe XD", "InVision"},
		"Product Manager":     {"Trello", "Asana", "Jira", "Notion"},
		"Software Engineer":   {"GitHub", "GitLab", "Jira"},
		"Engineering Manager": {"Jira", "GitHub", "GitLab"},
		"Data Scientist":      {"Tableau", "Power BI", "Mixpanel"},
		"Marketing Manager":   {"HubSpot", "Google Analytics", "Salesforce"},
		"Sales Manager":       {"Salesforce", "HubSpot", "Intercom"},
	}

	companyPrefixes = []string{"Build", "Create", "Smart", "Fast", "Quick", "Pro"}
	companySuffixes = []string{"Tech", "Labs", "Inc", "Software", "Systems", "Solutions"}
)

// generator produces synthetic participant profiles from a seeded source, so
// repeated runs with the same seed generate identical corpora.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// sample draws k distinct items from pool, fewer if the pool is smaller.
func (g *generator) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	idx := g.rng.Perm(len(pool))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *generator) participant() domain.Participant {
	name := g.pick(firstNames) + " " + g.pick(lastNames)
	role := g.pick(roles)
	industry := g.pick(industries)
	companySize := g.pick(companySizes)
	remote := g.rng.Intn(3) < 2 // roughly two thirds remote
	teamSize := 2 + g.rng.Intn(49)
	experienceYears := 1 + g.rng.Intn(15)

	selectedTools := g.sample(commonTools, 1+g.rng.Intn(2))
	if rt, ok := roleTools[role]; ok {
		selectedTools = append(selectedTools, g.sample(rt, 2)...)
	}
	remaining := make([]string, 0, len(tools))
	for _, t := range tools {
		if !contains(selectedTools, t) {
			remaining = append(remaining, t)
		}
	}
	selectedTools = append(selectedTools, g.sample(remaining, 1+g.rng.Intn(3))...)

	selectedSkills := g.sample(skills, 3+g.rng.Intn(3))

	companyName := g.pick(companyPrefixes) + g.pick(companySuffixes)

	workLocation := "in-office"
	if remote {
		workLocation = "remotely"
	}
	description := fmt.Sprintf(
		"%s at %s, a %s company with %s employees. "+
			"Works %s and manages a team of %d people. "+
			"%d years of experience in the field. "+
			"Uses %s for daily work. Specializes in %s.",
		role, companyName, strings.ToLower(industry), companySize,
		workLocation, teamSize, experienceYears,
		strings.Join(selectedTools[:3], ", "),
		strings.Join(selectedSkills[:3], ", "),
	)

	return domain.Reconstruct(
		uuid.NewString(), name, role, industry, companyName, companySize,
		remote, teamSize, experienceYears, selectedTools, selectedSkills, description,
	)
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
