package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company      string             `bson:"company" json:"company"`
	Position     string             `bson:"position" json:"position"`
	Description  string             `bson:"description" json:"description"`
	StartDate    string             `bson:"startDate" json:"startDate"`
	EndDate      string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Experience) Normalize() {
	e.Company = trim(e.Company)
	e.Position = trim(e.Position)
	e.Description = trim(e.Description)
	e.StartDate = trim(e.StartDate)
	e.EndDate = trim(e.EndDate)
	e.Location = trim(e.Location)
	e.Technologies = trimAll(e.Technologies)
	e.Achievements = trimAll(e.Achievements)
}

func (e *Experience) Validate() error {
	errs := fieldErrors{}
	errs.require("company", e.Company)
	errs.require("position", e.Position)
	errs.require("description", e.Description)
	errs.require("startDate", e.StartDate)
	return errs.err()
}
