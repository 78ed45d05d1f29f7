package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-day format used for analytics bucketing.
const DateLayout = "2006-01-02"

// Today returns the current UTC calendar day in DateLayout form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// Analytics is a per-page, per-day view counter. At most one record exists
// for a (page, date) pair; the store enforces this with a unique index.
//
// UniqueViews increments in lockstep with Views: there is no visitor dedup
// key in the system, so it is not true unique-visitor tracking.
type Analytics struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Page        string             `bson:"page" json:"page"`
	Views       int64              `bson:"views" json:"views"`
	UniqueViews int64              `bson:"uniqueViews" json:"uniqueViews"`
	Date        string             `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
