package markdown

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Reconstruct renders a ResumeDocument back to Markdown. The output is
// not byte-for-byte identical to the original input, but re-parsing it
// yields an equivalent document, which is what the export path needs to
// re-render stored resumes.
func Reconstruct(doc *types.ResumeDocument) string {
	if doc == nil {
		return ""
	}
	var sb strings.Builder

	if doc.Header.Name != "" {
		sb.WriteString("# " + doc.Header.Name + "\n")
	}
	if doc.Header.Title != "" {
		sb.WriteString("## " + doc.Header.Title + "\n")
	}
	if len(doc.Header.Contact) > 0 {
		sb.WriteString(strings.Join(doc.Header.Contact, " | ") + "\n")
	}

	for _, section := range doc.Sections {
		sb.WriteString("\n### " + section.Title + "\n")
		for _, item := range section.Items {
			writeItem(&sb, item)
		}
	}

	return sb.String()
}

func writeItem(sb *strings.Builder, item types.Item) {
	switch v := item.(type) {
	case *types.Job:
		sb.WriteString(v.Role + " at " + joinPlace(v.Company, v.Location) + " | " + v.Date + "\n")
		for _, b := range v.Bullets {
			sb.WriteString("- " + b + "\n")
		}
	case *types.Education:
		sb.WriteString(v.Degree + " | " + joinPlace(v.Institution, v.Location) + " | " + v.Date + "\n")
		for _, b := range v.Bullets {
			sb.WriteString("- " + b + "\n")
		}
	case *types.Bullet:
		sb.WriteString("- " + v.Text + "\n")
	case *types.Text:
		sb.WriteString(v.Text + "\n")
	case *types.Skill:
		sb.WriteString("- " + v.Text + "\n")
	case *types.SkillCategory:
		sb.WriteString("**" + v.Category + ":** " + strings.Join(v.Skills, ", ") + "\n")
	}
}

func joinPlace(name, location string) string {
	if location == "" {
		return name
	}
	return name + ", " + location
}
