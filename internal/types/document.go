// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// ItemKind identifies the concrete variant of an Item.
type ItemKind string

// Item kinds. The set is closed: renderers switch over these values and
// must handle every one of them.
const (
	KindJob           ItemKind = "job"
	KindEducation     ItemKind = "education"
	KindBullet        ItemKind = "bullet"
	KindText          ItemKind = "text"
	KindSkill         ItemKind = "skill"
	KindSkillCategory ItemKind = "skill_category"
)

// Item is one entry of a resume section. Exactly one of the variant
// structs below implements it for each ItemKind.
type Item interface {
	Kind() ItemKind
}

// Job represents an employment entry with optional trailing bullets.
type Job struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location,omitempty"`
	Date     string   `json:"date"`
	Bullets  []string `json:"bullets"`
}

// Kind returns KindJob.
func (*Job) Kind() ItemKind { return KindJob }

// Education represents a degree or certification entry.
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	Date        string   `json:"date"`
	Bullets     []string `json:"bullets"`
}

// Kind returns KindEducation.
func (*Education) Kind() ItemKind { return KindEducation }

// Bullet is a standalone bulleted line not attached to a job or education entry.
type Bullet struct {
	Text string `json:"text"`
}

// Kind returns KindBullet.
func (*Bullet) Kind() ItemKind { return KindBullet }

// Text is a free-form paragraph line.
type Text struct {
	Text string `json:"text"`
}

// Kind returns KindText.
func (*Text) Kind() ItemKind { return KindText }

// Skill is a single skill token inside a skills section.
type Skill struct {
	Text string `json:"text"`
}

// Kind returns KindSkill.
func (*Skill) Kind() ItemKind { return KindSkill }

// SkillCategory groups skills under a category label, e.g. "Languages: Go, Python".
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Kind returns KindSkillCategory.
func (*SkillCategory) Kind() ItemKind { return KindSkillCategory }

// Header holds the identity block parsed from the top of the document.
type Header struct {
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Contact []string `json:"contact"`
}

// Section is a titled, ordered group of items corresponding to one resume
// heading. Sections never contain zero items in parser output.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// ResumeDocument is the root of the parsed resume model. It is constructed
// fresh on every parse call and never mutated afterwards; callers treat it
// as a read-only snapshot.
type ResumeDocument struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
	IsValid  bool      `json:"is_valid"`
	Errors   []string  `json:"errors"`
	Warnings []string  `json:"warnings"`
}

// sectionJSON is the wire form of a Section. Items carry a "type"
// discriminator so the union survives a JSON round trip.
type sectionJSON struct {
	Title string            `json:"title"`
	Items []json.RawMessage `json:"items"`
}

type itemEnvelope struct {
	Type ItemKind `json:"type"`
}

// MarshalJSON encodes the section with a type discriminator on each item.
func (s Section) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(s.Items))
	for _, item := range s.Items {
		body, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		tagged, err := json.Marshal(struct {
			Type ItemKind `json:"type"`
		}{item.Kind()})
		if err != nil {
			return nil, err
		}
		// Splice the discriminator into the item object.
		if len(body) < 2 || body[0] != '{' {
			return nil, fmt.Errorf("item of kind %q did not encode to a JSON object", item.Kind())
		}
		merged := append([]byte(nil), tagged[:len(tagged)-1]...)
		if string(body) != "{}" {
			merged = append(merged, ',')
			merged = append(merged, body[1:]...)
		} else {
			merged = append(merged, '}')
		}
		items = append(items, merged)
	}
	return json.Marshal(sectionJSON{Title: s.Title, Items: items})
}

// UnmarshalJSON decodes the section, dispatching each item on its "type" field.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Title = raw.Title
	s.Items = make([]Item, 0, len(raw.Items))
	for i, rawItem := range raw.Items {
		var env itemEnvelope
		if err := json.Unmarshal(rawItem, &env); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		item, err := decodeItem(env.Type, rawItem)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		s.Items = append(s.Items, item)
	}
	return nil
}

func decodeItem(kind ItemKind, data []byte) (Item, error) {
	switch kind {
	case KindJob:
		var v Job
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindEducation:
		var v Education
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindBullet:
		var v Bullet
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindText:
		var v Text
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindSkill:
		var v Skill
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindSkillCategory:
		var v SkillCategory
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", kind)
	}
}
