package markdown

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// rule is one line classifier. apply returns true when the rule consumed
// the line; rules are evaluated top-to-bottom and the first match wins,
// which makes the precedence auditable rule-by-rule.
type rule struct {
	name  string
	apply func(p *parser, line string) bool
}

// scanRules is the classifier chain, in precedence order:
// name heading, header title, contact line, section heading,
// job/education entry, bullet, skills-context line, plain text.
// Lines before the first section that match nothing are dropped.
var scanRules = []rule{
	{name: "name-heading", apply: applyNameHeading},
	{name: "title-heading", apply: applyTitleHeading},
	{name: "contact-line", apply: applyContactLine},
	{name: "section-heading", apply: applySectionHeading},
	{name: "entry-line", apply: applyEntryLine},
	{name: "bullet-line", apply: applyBulletLine},
	{name: "skills-line", apply: applySkillsLine},
	{name: "text-line", apply: applyTextLine},
	{name: "pre-section", apply: applyPreSection},
}

var (
	headingRe  = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	numberedRe = regexp.MustCompile(`^\d+\.\s+\*\*(.+?)\*\*\s*$`)
	categoryRe = regexp.MustCompile(`^\*\*([^*]+?):?\*\*:?\s*(.+)$`)
)

// headingLevel returns the heading level (1-6) and text of a Markdown
// heading line, or 0 when the line is not a heading.
func headingLevel(line string) (int, string) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, ""
	}
	return len(m[1]), m[2]
}

// applyNameHeading takes the first level 1-2 heading as the person's name.
// The heading is consumed even when it cleans to nothing; an empty result
// is recorded as a warning and the name stays recoverable by fallback.
func applyNameHeading(p *parser, line string) bool {
	if p.nameSet {
		return false
	}
	level, text := headingLevel(line)
	if level != 1 && level != 2 {
		return false
	}
	name := CleanInline(text)
	if name == "" {
		p.warn("Name heading is empty after cleaning")
	}
	p.doc.Header.Name = name
	p.nameSet = true
	return true
}

// applyTitleHeading takes the next level 2-3 heading after the name, while
// no section is open yet, as the professional title. Headings whose text
// names a well-known section ("Skills", "Work Experience", ...) are never
// titles; they fall through to the section rule so a resume with no title
// line still opens its first section correctly.
func applyTitleHeading(p *parser, line string) bool {
	if !p.nameSet || p.titleSet || p.current >= 0 {
		return false
	}
	level, text := headingLevel(line)
	if level != 2 && level != 3 {
		return false
	}
	title := CleanInline(text)
	if looksLikeSectionTitle(title) {
		return false
	}
	p.doc.Header.Title = title
	p.titleSet = true
	return true
}

// sectionTitleKeywords are the substrings that mark a heading as a section
// marker rather than a professional title. The first five mirror the
// layout-role mapping used by the renderers.
var sectionTitleKeywords = []string{
	"skill", "experience", "work", "education",
	"summary", "profile", "about", "certification",
}

// looksLikeSectionTitle reports whether a cleaned heading text names a
// well-known resume section.
func looksLikeSectionTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range sectionTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// applyContactLine harvests contact tokens from lines sitting between the
// header and the first section heading.
func applyContactLine(p *parser, line string) bool {
	if p.current >= 0 {
		return false
	}
	lower := strings.ToLower(line)
	if !emailRe.MatchString(line) &&
		!strings.Contains(lower, "linkedin") &&
		!strings.Contains(lower, "github") &&
		!phoneRe.MatchString(line) {
		return false
	}
	p.doc.Header.Contact = append(p.doc.Header.Contact, ExtractContacts(line)...)
	return true
}

// applySectionHeading opens a new section for level 2-4 headings and
// numbered headings of the form "N. **Title**". Level 1 headings after
// the name never open sections; they are consumed and ignored.
func applySectionHeading(p *parser, line string) bool {
	level, text := headingLevel(line)
	switch {
	case level >= 2 && level <= 4:
		// text already extracted
	case level == 1:
		// A stray top-level heading once the name is set carries no
		// section meaning. Swallow it so it cannot leak into a section
		// as a text item.
		return true
	default:
		m := numberedRe.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		text = m[1]
	}

	title := CleanInline(text)
	p.entry = nil
	p.inEntryBlock = false
	if title == "" {
		return true
	}
	p.openSection(title)
	return true
}

// applyEntryLine classifies "X at Y | date" shaped lines inside a section
// as Job or Education entries and opens the entry block for trailing
// bullets.
func applyEntryLine(p *parser, line string) bool {
	if p.current < 0 {
		return false
	}
	if !strings.Contains(line, " at ") && !strings.Contains(line, " | ") {
		return false
	}
	item := p.parseEntry(line)
	if item == nil {
		return false
	}
	p.appendItem(item)
	p.entry = item
	p.inEntryBlock = true
	return true
}

// applyBulletLine attributes bullets to the open entry block, or emits a
// standalone Bullet item. Bullets inside a skills section with no open
// entry are left for the skills rule, which splits them into Skill items.
func applyBulletLine(p *parser, line string) bool {
	text, ok := stripBulletMarker(line)
	if !ok {
		return false
	}
	if p.inEntryBlock && p.entry != nil {
		appendEntryBullet(p.entry, CleanInline(text))
		return true
	}
	if p.current < 0 {
		return false
	}
	if p.inSkillsSection() {
		return false
	}
	cleaned := CleanInline(text)
	if cleaned == "" {
		return true
	}
	p.appendItem(&types.Bullet{Text: cleaned})
	return true
}

// applySkillsLine parses category and skill lines inside sections whose
// title matches the skills heuristic.
func applySkillsLine(p *parser, line string) bool {
	if p.current < 0 || !p.inSkillsSection() {
		return false
	}

	if m := categoryRe.FindStringSubmatch(line); m != nil {
		category := CleanInline(strings.TrimSuffix(m[1], ":"))
		skills := splitSkills(m[2])
		if category != "" && len(skills) > 0 {
			p.appendItem(&types.SkillCategory{Category: category, Skills: skills})
		}
		return true
	}

	text, bulleted := stripBulletMarker(line)
	if !bulleted {
		text = line
		if !strings.ContainsAny(text, ",;") {
			// Plain prose without separators stays a text item.
			return false
		}
	}
	skills := splitSkills(text)
	for _, skill := range skills {
		p.appendItem(&types.Skill{Text: skill})
	}
	return len(skills) > 0
}

// applyTextLine turns any remaining line inside an open section into a
// Text item.
func applyTextLine(p *parser, line string) bool {
	if p.current < 0 {
		return false
	}
	cleaned := CleanInline(line)
	if cleaned == "" {
		return true
	}
	p.appendItem(&types.Text{Text: cleaned})
	return true
}

// applyPreSection drops lines that precede the first section heading and
// matched none of the header rules.
func applyPreSection(p *parser, _ string) bool {
	return p.current < 0
}

// stripBulletMarker removes a leading "-", "•", or "*" list marker.
// A bare "*" is only a marker when followed by whitespace, so bold and
// italic lines are not mistaken for bullets.
func stripBulletMarker(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "- "):
		return strings.TrimSpace(line[2:]), true
	case strings.HasPrefix(line, "• "):
		return strings.TrimSpace(line[len("• "):]), true
	case strings.HasPrefix(line, "* "):
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}

// splitSkills splits a comma or semicolon separated list into cleaned,
// non-empty skill tokens.
func splitSkills(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := CleanInline(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// appendEntryBullet appends a bullet to the open Job or Education entry.
func appendEntryBullet(entry types.Item, text string) {
	if text == "" {
		return
	}
	switch e := entry.(type) {
	case *types.Job:
		e.Bullets = append(e.Bullets, text)
	case *types.Education:
		e.Bullets = append(e.Bullets, text)
	}
}
