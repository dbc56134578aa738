// Package markdown parses LLM-generated, resume-shaped Markdown into the
// structured document model consumed by the rendering templates and the
// PDF exporter.
//
// The parser is a pure function over its input string: no I/O, no shared
// state between calls, and it never fails. Malformed content degrades to
// diagnostics on the returned document rather than errors.
package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/types"
)

// maxFallbackNameLength caps the recovered name when no heading provided one.
const maxFallbackNameLength = 100

// Options controls behavior that legitimately differs between consumers
// of the parser. The zero value disables all optional behavior.
type Options struct {
	// ScavengeDates allows a job or education entry with no inline date to
	// take its date from the following line when that line looks like a
	// date range ("2020-2023", "Present", ...). The scavenged line is
	// consumed and produces no item of its own.
	ScavengeDates bool
}

// DefaultOptions returns the options used by the server-side parse path.
func DefaultOptions() Options {
	return Options{ScavengeDates: true}
}

// Parse parses resume-shaped Markdown into a ResumeDocument using
// DefaultOptions. Identical input always yields an identical document,
// diagnostics included.
func Parse(input string) *types.ResumeDocument {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses resume-shaped Markdown into a ResumeDocument.
// It terminates and returns a well-formed document for any input,
// including empty, binary-looking, or extremely long strings.
func ParseWithOptions(input string, opts Options) *types.ResumeDocument {
	doc := &types.ResumeDocument{
		Header:   types.Header{Contact: []string{}},
		Sections: []types.Section{},
		Errors:   []string{},
		Warnings: []string{},
	}

	if strings.TrimSpace(input) == "" {
		doc.Errors = append(doc.Errors, "Empty markdown provided")
		doc.IsValid = false
		return doc
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	p := &parser{
		opts:    opts,
		doc:     doc,
		lines:   strings.Split(input, "\n"),
		current: -1,
	}
	p.scan()
	p.finalize()
	return doc
}

// parser holds the scan cursor and accumulator state for a single parse
// call. Sections live in the slice below and are referenced by index so
// that bullets appended later land in the stored section, not a copy.
type parser struct {
	opts Options
	doc  *types.ResumeDocument

	lines []string
	idx   int

	sections []types.Section
	current  int // index into sections, -1 before the first heading

	entry        types.Item // last pushed *types.Job or *types.Education
	inEntryBlock bool

	nameSet  bool
	titleSet bool
}

// scan walks the input line by line, applying the classifier rules in
// precedence order. The first matching rule consumes the line.
func (p *parser) scan() {
	for p.idx = 0; p.idx < len(p.lines); p.idx++ {
		line := strings.TrimSpace(p.lines[p.idx])
		if line == "" {
			continue
		}
		for _, r := range scanRules {
			if r.apply(p, line) {
				break
			}
		}
	}
}

// finalize applies the assembly and validation pass: drop empty sections,
// recover a name if none was found, and compute validity.
func (p *parser) finalize() {
	for _, sec := range p.sections {
		if len(sec.Items) > 0 {
			p.doc.Sections = append(p.doc.Sections, sec)
		}
	}

	if p.doc.Header.Name == "" {
		p.fallbackName()
	}
	if len(p.doc.Sections) == 0 {
		p.doc.Errors = append(p.doc.Errors, "No resume sections found")
	}
	p.doc.IsValid = len(p.doc.Errors) == 0
}

// fallbackName recovers a name from the first non-heading non-empty line,
// or records a fatal error when no such line exists.
func (p *parser) fallbackName() {
	for _, raw := range p.lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := CleanInline(line)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > maxFallbackNameLength {
			name = string([]rune(name)[:maxFallbackNameLength])
		}
		p.doc.Header.Name = name
		p.doc.Warnings = append(p.doc.Warnings, "Name not found in a heading; using first text line as name")
		return
	}
	p.doc.Errors = append(p.doc.Errors, "No name found in resume")
}

// openSection pushes a new section and resets the entry-block state.
func (p *parser) openSection(title string) {
	p.sections = append(p.sections, types.Section{Title: title, Items: []types.Item{}})
	p.current = len(p.sections) - 1
	p.entry = nil
	p.inEntryBlock = false
}

// appendItem adds an item to the current section. Callers must only use it
// while a section is open.
func (p *parser) appendItem(item types.Item) {
	p.sections[p.current].Items = append(p.sections[p.current].Items, item)
}

// currentSectionTitle returns the open section's title, or "" if none.
func (p *parser) currentSectionTitle() string {
	if p.current < 0 {
		return ""
	}
	return p.sections[p.current].Title
}

// inSkillsSection reports whether the open section's title matches the
// skills heuristic. The substring match is shared with the renderers, so
// section-title cleaning must not alter case in a way that breaks it.
func (p *parser) inSkillsSection() bool {
	return strings.Contains(strings.ToLower(p.currentSectionTitle()), "skill")
}

// peekLine returns the next line without consuming it.
func (p *parser) peekLine() (string, bool) {
	if p.idx+1 >= len(p.lines) {
		return "", false
	}
	return strings.TrimSpace(p.lines[p.idx+1]), true
}

// consumeNextLine advances the cursor past the line returned by peekLine.
func (p *parser) consumeNextLine() {
	p.idx++
}

func (p *parser) warn(msg string) {
	p.doc.Warnings = append(p.doc.Warnings, msg)
}
