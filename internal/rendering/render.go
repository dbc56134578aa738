package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates holds the three presentation templates, parsed once at startup.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// TemplateData is the view model passed to the HTML templates. It flattens
// the item union into per-kind slices so templates stay free of type logic.
type TemplateData struct {
	Name     string
	Title    string
	Contact  []string
	Sections []SectionView
}

// SectionView is one resume section prepared for template consumption.
type SectionView struct {
	Title      string
	Kind       string // skills, experience, education, summary, other
	Entries    []EntryView
	Bullets    []string
	Paragraphs []string
	Skills     []string
	Categories []CategoryView
}

// EntryView is a job or education entry in display form.
type EntryView struct {
	Heading  string // role or degree
	Org      string // company or institution
	Location string
	Date     string
	Bullets  []string
}

// CategoryView is a skill category in display form.
type CategoryView struct {
	Name   string
	Skills []string
}

// TemplateNames returns the available template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates.Templates()))
	for _, t := range templates.Templates() {
		name := strings.TrimSuffix(t.Name(), ".html.tmpl")
		if name != t.Name() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RenderHTML renders a parsed resume with the named template (classic,
// modern, or functional). All three templates consume the same view model,
// so every renderer sees the same document shape.
func RenderHTML(doc *types.ResumeDocument, templateName string) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}

	tmpl := templates.Lookup(templateName + ".html.tmpl")
	if tmpl == nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("unknown template %q (available: %s)", templateName, strings.Join(TemplateNames(), ", ")),
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, BuildTemplateData(doc)); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute template %q", templateName),
			Cause:   err,
		}
	}
	return sb.String(), nil
}

// BuildTemplateData flattens a ResumeDocument into the template view model.
func BuildTemplateData(doc *types.ResumeDocument) *TemplateData {
	data := &TemplateData{
		Name:    doc.Header.Name,
		Title:   doc.Header.Title,
		Contact: doc.Header.Contact,
	}
	for _, section := range doc.Sections {
		view := SectionView{
			Title: section.Title,
			Kind:  sectionKind(section.Title),
		}
		for _, item := range section.Items {
			switch v := item.(type) {
			case *types.Job:
				view.Entries = append(view.Entries, EntryView{
					Heading:  v.Role,
					Org:      v.Company,
					Location: v.Location,
					Date:     v.Date,
					Bullets:  v.Bullets,
				})
			case *types.Education:
				view.Entries = append(view.Entries, EntryView{
					Heading:  v.Degree,
					Org:      v.Institution,
					Location: v.Location,
					Date:     v.Date,
					Bullets:  v.Bullets,
				})
			case *types.Bullet:
				view.Bullets = append(view.Bullets, v.Text)
			case *types.Text:
				view.Paragraphs = append(view.Paragraphs, v.Text)
			case *types.Skill:
				view.Skills = append(view.Skills, v.Text)
			case *types.SkillCategory:
				view.Categories = append(view.Categories, CategoryView{Name: v.Category, Skills: v.Skills})
			}
		}
		data.Sections = append(data.Sections, view)
	}
	return data
}

// sectionKind maps a section title onto a layout role using the same
// case-insensitive substring heuristics the parser applies. Changing these
// strings breaks the contract shared with the parser's section titling.
func sectionKind(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "skill"):
		return "skills"
	case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
		return "experience"
	case strings.Contains(lower, "education"):
		return "education"
	case strings.Contains(lower, "summary") || strings.Contains(lower, "profile") || strings.Contains(lower, "about"):
		return "summary"
	default:
		return "other"
	}
}
