// Package content holds the portfolio's static content: profile, projects,
// skills and the education/experience journey. Content is plain YAML so a
// different portfolio is a different file, not a different build.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// AllCategories is the pseudo-category that matches every project.
const AllCategories = "All"

// Portfolio is the full content of the site.
type Portfolio struct {
	Profile    Profile     `yaml:"profile"`
	Projects   []Project   `yaml:"projects"`
	Skills     []Skill     `yaml:"skills"`
	SkillAreas []SkillArea `yaml:"skill_areas"`
	Journey    []Milestone `yaml:"journey"`
	Socials    []Link      `yaml:"socials"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Roles    []string `yaml:"roles"`
	Tagline  string   `yaml:"tagline"`
	Location string   `yaml:"location"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	About    []string `yaml:"about"`
}

// Project is one portfolio project.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tech        []string `yaml:"tech"`
	Featured    bool     `yaml:"featured"`
	Live        string   `yaml:"live"`
	Source      string   `yaml:"source"`
}

// Skill is one entry of the skills grid.
type Skill struct {
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Level    int    `yaml:"level"` // 0-100
	Category string `yaml:"category"`
}

// SkillArea is a broad skill heading.
type SkillArea struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// MilestoneKind separates education from work experience.
type MilestoneKind string

const (
	KindEducation  MilestoneKind = "education"
	KindExperience MilestoneKind = "experience"
)

// Milestone is one timeline entry.
type Milestone struct {
	Year        string        `yaml:"year"`
	Title       string        `yaml:"title"`
	Institution string        `yaml:"institution"`
	Kind        MilestoneKind `yaml:"kind"`
	Description []string      `yaml:"description"`
}

// Link is a named URL.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Validate checks the fields the UI relies on.
func (p Portfolio) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile name is required"))
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, pr := range p.Projects {
		switch {
		case pr.ID == "":
			errs = append(errs, fmt.Errorf("project %d has no id", i))
		case seen[pr.ID]:
			errs = append(errs, fmt.Errorf("duplicate project id %q", pr.ID))
		}
		seen[pr.ID] = true
		if pr.Title == "" {
			errs = append(errs, fmt.Errorf("project %q has no title", pr.ID))
		}
	}

	for _, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skill %q level %d outside 0-100", s.Name, s.Level))
		}
	}

	for _, m := range p.Journey {
		if m.Kind != KindEducation && m.Kind != KindExperience {
			errs = append(errs, fmt.Errorf("milestone %q has unknown kind %q", m.Title, m.Kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content: invalid portfolio: %w", errors.Join(errs...))
	}
	return nil
}

// Categories returns AllCategories followed by each project category in
// order of first appearance. Categories differing only in case collapse to
// the first spelling, matching ProjectsIn.
func (p Portfolio) Categories() []string {
	cats := []string{AllCategories}
	seen := map[string]bool{strings.ToLower(AllCategories): true}
	for _, pr := range p.Projects {
		key := strings.ToLower(pr.Category)
		if pr.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		cats = append(cats, pr.Category)
	}
	return cats
}

// ProjectsIn returns the projects in a category; AllCategories or "" returns
// every project.
func (p Portfolio) ProjectsIn(category string) []Project {
	if category == "" || category == AllCategories {
		return append([]Project(nil), p.Projects...)
	}
	var out []Project
	for _, pr := range p.Projects {
		if strings.EqualFold(pr.Category, category) {
			out = append(out, pr)
		}
	}
	return out
}

// Featured returns the projects shown on the home page.
func (p Portfolio) Featured() []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}

// JourneyOf returns milestones of one kind, in file order.
func (p Portfolio) JourneyOf(kind MilestoneKind) []Milestone {
	var out []Milestone
	for _, m := range p.Journey {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// Project looks a project up by id.
func (p Portfolio) Project(id string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}
