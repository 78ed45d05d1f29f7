package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Education struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Institution  string             `bson:"institution" json:"institution"`
	Degree       string             `bson:"degree" json:"degree"`
	Field        string             `bson:"field" json:"field"`
	StartDate    string             `bson:"startDate" json:"startDate"`
	EndDate      string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	GPA          string             `bson:"gpa,omitempty" json:"gpa,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Education) Normalize() {
	e.Institution = trim(e.Institution)
	e.Degree = trim(e.Degree)
	e.Field = trim(e.Field)
	e.StartDate = trim(e.StartDate)
	e.EndDate = trim(e.EndDate)
	e.GPA = trim(e.GPA)
	e.Description = trim(e.Description)
	e.Achievements = trimAll(e.Achievements)
}

func (e *Education) Validate() error {
	errs := fieldErrors{}
	errs.require("institution", e.Institution)
	errs.require("degree", e.Degree)
	errs.require("field", e.Field)
	errs.require("startDate", e.StartDate)
	return errs.err()
}
