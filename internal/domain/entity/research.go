package entity

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResearchStatus is the closed set of publication states.
type ResearchStatus string

const (
	ResearchStatusPublished   ResearchStatus = "published"
	ResearchStatusAccepted    ResearchStatus = "accepted"
	ResearchStatusUnderReview ResearchStatus = "under-review"
	ResearchStatusSubmitted   ResearchStatus = "submitted"
	ResearchStatusDraft       ResearchStatus = "draft"
)

func (s ResearchStatus) Valid() bool {
	switch s {
	case ResearchStatusPublished, ResearchStatusAccepted, ResearchStatusUnderReview,
		ResearchStatusSubmitted, ResearchStatusDraft:
		return true
	}
	return false
}

// MinYear is the earliest year accepted for research and awards.
const MinYear = 2000

// MaxYear returns the latest accepted year (next calendar year).
func MaxYear() int { return time.Now().UTC().Year() + 1 }

type Research struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Authors     []string           `bson:"authors" json:"authors"`
	Venue       string             `bson:"venue" json:"venue"`
	Year        int                `bson:"year" json:"year"`
	Description string             `bson:"description" json:"description"`
	Abstract    string             `bson:"abstract,omitempty" json:"abstract,omitempty"`
	PdfURL      string             `bson:"pdfUrl,omitempty" json:"pdfUrl,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	Status      ResearchStatus     `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (r *Research) Normalize() {
	r.Title = trim(r.Title)
	r.Authors = trimAll(r.Authors)
	r.Venue = trim(r.Venue)
	r.Description = trim(r.Description)
	r.Abstract = trim(r.Abstract)
	r.PdfURL = trim(r.PdfURL)
	if r.Status == "" {
		r.Status = ResearchStatusPublished
	}
}

func (r *Research) Validate() error {
	errs := fieldErrors{}
	errs.require("title", r.Title)
	errs.requireList("authors", r.Authors)
	errs.require("venue", r.Venue)
	errs.require("description", r.Description)
	if r.Year < MinYear || r.Year > MaxYear() {
		errs["year"] = fmt.Sprintf("must be between %d and %d", MinYear, MaxYear())
	}
	if !r.Status.Valid() {
		errs["status"] = "must be a valid research status"
	}
	return errs.err()
}
