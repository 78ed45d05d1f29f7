package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectCategory is the closed set of portfolio project categories.
type ProjectCategory string

const (
	ProjectCategoryCybersecurity ProjectCategory = "cybersecurity"
	ProjectCategoryAI            ProjectCategory = "ai"
	ProjectCategoryWeb           ProjectCategory = "web"
	ProjectCategoryMobile        ProjectCategory = "mobile"
	ProjectCategoryDesktop       ProjectCategory = "desktop"
	ProjectCategoryResearch      ProjectCategory = "research"
	ProjectCategoryTool          ProjectCategory = "tool"
)

func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryCybersecurity, ProjectCategoryAI, ProjectCategoryWeb,
		ProjectCategoryMobile, ProjectCategoryDesktop, ProjectCategoryResearch,
		ProjectCategoryTool:
		return true
	}
	return false
}

// ProjectStatus is the closed set of project lifecycle states.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusArchived   ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned, ProjectStatusArchived:
		return true
	}
	return false
}

type Project struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	LongDescription string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Technologies    []string           `bson:"technologies" json:"technologies"`
	GithubURL       string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LiveURL         string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Featured        bool               `bson:"featured" json:"featured"`
	Category        ProjectCategory    `bson:"category" json:"category"`
	Status          ProjectStatus      `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims text fields and applies defaults for absent optional values.
func (p *Project) Normalize() {
	p.Title = trim(p.Title)
	p.Description = trim(p.Description)
	p.LongDescription = trim(p.LongDescription)
	p.Technologies = trimAll(p.Technologies)
	p.GithubURL = trim(p.GithubURL)
	p.LiveURL = trim(p.LiveURL)
	p.ImageURL = trim(p.ImageURL)
	if p.Status == "" {
		p.Status = ProjectStatusCompleted
	}
}

func (p *Project) Validate() error {
	errs := fieldErrors{}
	errs.require("title", p.Title)
	errs.require("description", p.Description)
	errs.requireList("technologies", p.Technologies)
	if !p.Category.Valid() {
		errs["category"] = "must be a valid project category"
	}
	if !p.Status.Valid() {
		errs["status"] = "must be a valid project status"
	}
	return errs.err()
}
