package prompts

import "strings"

// BriefSections are the headings a product brief is expected to contain.
var BriefSections = []string{
	"Problem",
	"Target users",
	"Core features",
	"Subscription tiers",
	"MVP scope",
	"Tech stack suggestion",
	"Next steps",
}

// MissingSections returns the brief headings not found in text, in order.
// Matching is case-insensitive and ignores markdown decoration around headings.
func MissingSections(text string) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, section := range BriefSections {
		if !strings.Contains(lower, strings.ToLower(section)) {
			missing = append(missing, section)
		}
	}
	return missing
}
