package markdown

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Defaults recorded (with a warning) when an entry line is missing fields.
const (
	unknownRole        = "Unknown Role"
	unknownCompany     = "Unknown Company"
	unknownDegree      = "Unknown Degree"
	unknownInstitution = "Unknown Institution"
)

var (
	// entryRe captures "A (at|@||) B [| C]": left of the separator, the
	// middle group, and an optional trailing date after a final pipe.
	entryRe = regexp.MustCompile(`^(.+?)\s(?:at|@|\|)\s(.+?)(?:\s*\|\s*([^|]+))?$`)

	// dateLineRe recognizes lines that carry only a date range, used for
	// next-line date scavenging.
	dateLineRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b|\bpresent\b|\bcurrent\b`)
)

// educationKeywords gate the Education classification together with the
// owning section's title.
var educationKeywords = []string{
	"university", "college", "bachelor", "master", "phd", "certificate",
}

// parseEntry classifies a line inside an open section as a Job or
// Education entry. It returns nil when the line does not fit the entry
// shape; the caller then lets the line degrade to a text item. This is a
// best-effort heuristic, not a guarantee.
func (p *parser) parseEntry(line string) types.Item {
	if _, bulleted := stripBulletMarker(line); bulleted {
		return nil
	}
	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	left := CleanInline(m[1])
	middle, location := splitTrailingLocation(CleanInline(m[2]))
	date := strings.TrimSpace(m[3])

	if date == "" {
		date = p.scavengeDate()
	}
	if date == "" {
		date = "Present"
	}

	if p.isEducationEntry(line) {
		return p.newEducation(left, middle, location, date)
	}
	return p.newJob(left, middle, location, date)
}

// isEducationEntry applies the section-title gate: the owning section must
// look like an education or certification section AND the line must carry
// a degree-shaped keyword.
func (p *parser) isEducationEntry(line string) bool {
	title := strings.ToLower(p.currentSectionTitle())
	if !strings.Contains(title, "education") && !strings.Contains(title, "certification") {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (p *parser) newJob(role, company, location, date string) *types.Job {
	if role == "" {
		role = unknownRole
		p.warn("Job entry missing role; defaulted to " + unknownRole)
	}
	if company == "" {
		company = unknownCompany
		p.warn("Job entry missing company; defaulted to " + unknownCompany)
	}
	return &types.Job{
		Role:     role,
		Company:  company,
		Location: location,
		Date:     date,
		Bullets:  []string{},
	}
}

func (p *parser) newEducation(degree, institution, location, date string) *types.Education {
	if degree == "" {
		degree = unknownDegree
		p.warn("Education entry missing degree; defaulted to " + unknownDegree)
	}
	if institution == "" {
		institution = unknownInstitution
		p.warn("Education entry missing institution; defaulted to " + unknownInstitution)
	}
	return &types.Education{
		Degree:      degree,
		Institution: institution,
		Location:    location,
		Date:        date,
		Bullets:     []string{},
	}
}

// scavengeDate takes the date from the following line when it is a bare
// date range and date scavenging is enabled. The scavenged line is
// consumed so it does not also become a text item.
func (p *parser) scavengeDate() string {
	if !p.opts.ScavengeDates {
		return ""
	}
	next, ok := p.peekLine()
	if !ok || next == "" {
		return ""
	}
	if _, bulleted := stripBulletMarker(next); bulleted {
		return ""
	}
	if level, _ := headingLevel(next); level > 0 {
		return ""
	}
	if !dateLineRe.MatchString(next) {
		return ""
	}
	p.consumeNextLine()
	return CleanInline(next)
}

// splitTrailingLocation splits "Acme Corp, Berlin" into the company or
// institution part and a trailing location.
func splitTrailingLocation(text string) (string, string) {
	idx := strings.LastIndex(text, ",")
	if idx < 0 {
		return text, ""
	}
	head := strings.TrimSpace(text[:idx])
	tail := strings.TrimSpace(text[idx+1:])
	if head == "" || tail == "" {
		return text, ""
	}
	return head, tail
}
