package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultContentIsValid(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if p.Profile.Name == "" {
		t.Error("default profile has no name")
	}
	if len(p.Projects) != 8 {
		t.Errorf("len(Projects) = %d, expected 8", len(p.Projects))
	}
	if len(p.Featured()) != 3 {
		t.Errorf("len(Featured()) = %d, expected 3", len(p.Featured()))
	}
	if len(p.Skills) == 0 || len(p.Journey) == 0 {
		t.Error("default content should have skills and journey entries")
	}
}

func TestCategories(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	cats := p.Categories()
	expected := []string{AllCategories, "Web Development", "UI/UX Design", "Educational", "E-commerce", "Corporate"}
	if strings.Join(cats, "|") != strings.Join(expected, "|") {
		t.Errorf("Categories() = %v, expected %v", cats, expected)
	}
}

func TestCategoriesIgnoreCase(t *testing.T) {
	p := Portfolio{Projects: []Project{
		{ID: "a", Category: "Web"},
		{ID: "b", Category: "web"},
		{ID: "c", Category: "Games"},
		{ID: "d", Category: "WEB"},
	}}

	cats := p.Categories()
	expected := []string{AllCategories, "Web", "Games"}
	if strings.Join(cats, "|") != strings.Join(expected, "|") {
		t.Errorf("Categories() = %v, expected %v", cats, expected)
	}
	if got := len(p.ProjectsIn(cats[1])); got != 3 {
		t.Errorf("ProjectsIn(%q) = %d projects, expected 3", cats[1], got)
	}
}

func TestProjectsIn(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		category string
		expected int
	}{
		{AllCategories, 8},
		{"", 8},
		{"Educational", 3},
		{"educational", 3},
		{"UI/UX Design", 2},
		{"Nope", 0},
	}

	for _, tc := range tests {
		got := p.ProjectsIn(tc.category)
		if len(got) != tc.expected {
			t.Errorf("ProjectsIn(%q) returned %d projects, expected %d", tc.category, len(got), tc.expected)
		}
	}

	all := p.ProjectsIn(AllCategories)
	all[0].Title = "changed"
	if p.Projects[0].Title == "changed" {
		t.Error("ProjectsIn(All) should return a copy")
	}
}

func TestJourneyOf(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	edu := p.JourneyOf(KindEducation)
	exp := p.JourneyOf(KindExperience)
	if len(edu)+len(exp) != len(p.Journey) {
		t.Errorf("education %d + experience %d != journey %d", len(edu), len(exp), len(p.Journey))
	}
	if len(edu) != 3 {
		t.Errorf("len(education) = %d, expected 3", len(edu))
	}
}

func TestProjectLookup(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if pr, ok := p.Project("shoes"); !ok || pr.Category != "E-commerce" {
		t.Errorf("Project(shoes) = %+v, %v", pr, ok)
	}
	if _, ok := p.Project("missing"); ok {
		t.Error("Project(missing) should not be found")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing name", "projects: []", "profile name"},
		{"duplicate id", "profile: {name: A}\nprojects:\n  - {id: x, title: X}\n  - {id: x, title: Y}", "duplicate project id"},
		{"missing title", "profile: {name: A}\nprojects:\n  - {id: x}", "no title"},
		{"bad level", "profile: {name: A}\nskills:\n  - {name: Go, level: 120}", "outside 0-100"},
		{"bad kind", "profile: {name: A}\njourney:\n  - {title: T, kind: hobby}", "unknown kind"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Parse() error = %v, expected to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	data := "profile: {name: Sam}\nprojects:\n  - {id: one, title: One, category: Tools}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p.Profile.Name != "Sam" || len(p.Projects) != 1 {
		t.Errorf("Load() = %+v, expected custom content", p)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}
}
