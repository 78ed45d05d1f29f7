package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Speaking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Event       string             `bson:"event" json:"event"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	SlidesURL   string             `bson:"slidesUrl,omitempty" json:"slidesUrl,omitempty"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *Speaking) Normalize() {
	s.Title = trim(s.Title)
	s.Event = trim(s.Event)
	s.Date = trim(s.Date)
	s.Location = trim(s.Location)
	s.Description = trim(s.Description)
	s.SlidesURL = trim(s.SlidesURL)
	s.VideoURL = trim(s.VideoURL)
}

func (s *Speaking) Validate() error {
	errs := fieldErrors{}
	errs.require("title", s.Title)
	errs.require("event", s.Event)
	errs.require("date", s.Date)
	errs.require("location", s.Location)
	errs.require("description", s.Description)
	return errs.err()
}
