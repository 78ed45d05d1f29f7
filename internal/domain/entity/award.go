package entity

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AwardCategory is the closed set of award categories.
type AwardCategory string

const (
	AwardCategoryAcademic     AwardCategory = "academic"
	AwardCategoryProfessional AwardCategory = "professional"
	AwardCategoryCompetition  AwardCategory = "competition"
	AwardCategoryRecognition  AwardCategory = "recognition"
	AwardCategoryScholarship  AwardCategory = "scholarship"
)

func (c AwardCategory) Valid() bool {
	switch c {
	case AwardCategoryAcademic, AwardCategoryProfessional, AwardCategoryCompetition,
		AwardCategoryRecognition, AwardCategoryScholarship:
		return true
	}
	return false
}

type Award struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Organization string             `bson:"organization" json:"organization"`
	Year         int                `bson:"year" json:"year"`
	Description  string             `bson:"description" json:"description"`
	Category     AwardCategory      `bson:"category" json:"category"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (a *Award) Normalize() {
	a.Title = trim(a.Title)
	a.Organization = trim(a.Organization)
	a.Description = trim(a.Description)
}

func (a *Award) Validate() error {
	errs := fieldErrors{}
	errs.require("title", a.Title)
	errs.require("organization", a.Organization)
	errs.require("description", a.Description)
	if a.Year < MinYear || a.Year > MaxYear() {
		errs["year"] = fmt.Sprintf("must be between %d and %d", MinYear, MaxYear())
	}
	if !a.Category.Valid() {
		errs["category"] = "must be a valid award category"
	}
	return errs.err()
}
