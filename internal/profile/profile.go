// Package profile holds the static record the portfolio page is rendered from.
package profile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProfile is returned when a profile is missing a required field.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile describes the portfolio owner. It is built once at startup and
// handed to the renderer, which keeps its own copy.
type Profile struct {
	Name            string    `yaml:"name" validate:"required"`
	Title           string    `yaml:"title" validate:"required"`
	ContactEmail    string    `yaml:"contactEmail" validate:"required,email"`
	Socials         Socials   `yaml:"socials"`
	Skills          []Skill   `yaml:"skills" validate:"dive"`
	Certifications  []string  `yaml:"certifications" validate:"dive,required"`
	Projects        []Project `yaml:"projects" validate:"dive"`
	JobHistory      []Job     `yaml:"jobHistory" validate:"dive"`
	Accomplishments []string  `yaml:"accomplishments" validate:"dive,required"`
}

// Socials are the outbound profile links shown in the hero section.
type Socials struct {
	GitHub   string `yaml:"github" validate:"required"`
	LinkedIn string `yaml:"linkedin" validate:"required"`
	Drive    string `yaml:"drive" validate:"required"`
}

// Lookup returns the URL for a platform name: github, linkedin or drive.
func (s Socials) Lookup(platform string) (string, bool) {
	switch platform {
	case "github":
		return s.GitHub, true
	case "linkedin":
		return s.LinkedIn, true
	case "drive":
		return s.Drive, true
	}
	return "", false
}

type Skill struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	LiveURL     string   `yaml:"liveUrl" validate:"required"`
	SourceURL   string   `yaml:"sourceUrl" validate:"required"`
	DriveURL    string   `yaml:"driveUrl" validate:"required"`
}

type Job struct {
	Company     string `yaml:"company" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first missing or malformed field, wrapped in
// ErrInvalidProfile.
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidProfile, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// Normalize replaces nil sequences with empty ones so templates never see
// a missing field.
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].Tags == nil {
			p.Projects[i].Tags = []string{}
		}
	}
	if p.JobHistory == nil {
		p.JobHistory = []Job{}
	}
	if p.Accomplishments == nil {
		p.Accomplishments = []string{}
	}
}

// Clone returns a deep copy. Order of every sequence is preserved.
func (p Profile) Clone() Profile {
	c := p
	c.Skills = slices.Clone(p.Skills)
	c.Certifications = slices.Clone(p.Certifications)
	c.JobHistory = slices.Clone(p.JobHistory)
	c.Accomplishments = slices.Clone(p.Accomplishments)
	c.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Tags = slices.Clone(pr.Tags)
		c.Projects[i] = pr
	}
	c.Normalize()
	return c
}
