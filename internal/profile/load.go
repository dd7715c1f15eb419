package profile

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/microcosm-cc/bluemonday"
)

// Load reads a YAML profile from path, strips any markup from its text,
// and validates it. An empty path yields the built-in profile.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile document.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	p.Normalize()
	stripMarkup(&p)

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

var strict = bluemonday.StrictPolicy()

// plain removes tags and leaves the text unescaped; html/template escapes
// it again on output.
func plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

func stripMarkup(p *Profile) {
	p.Name = plain(p.Name)
	p.Title = plain(p.Title)
	for i := range p.Skills {
		p.Skills[i].Name = plain(p.Skills[i].Name)
		p.Skills[i].Description = plain(p.Skills[i].Description)
	}
	for i := range p.Certifications {
		p.Certifications[i] = plain(p.Certifications[i])
	}
	for i := range p.Projects {
		pr := &p.Projects[i]
		pr.Title = plain(pr.Title)
		pr.Description = plain(pr.Description)
		for j := range pr.Tags {
			pr.Tags[j] = plain(pr.Tags[j])
		}
	}
	for i := range p.JobHistory {
		j := &p.JobHistory[i]
		j.Company = plain(j.Company)
		j.Title = plain(j.Title)
		j.Date = plain(j.Date)
		j.Description = plain(j.Description)
	}
	for i := range p.Accomplishments {
		p.Accomplishments[i] = plain(p.Accomplishments[i])
	}
}
