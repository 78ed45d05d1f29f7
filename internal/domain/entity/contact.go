package entity

import (
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageStatus is the closed set of contact message states.
type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusArchived:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    MessageStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (m *ContactMessage) Normalize() {
	m.Name = trim(m.Name)
	m.Email = trim(m.Email)
	m.Subject = trim(m.Subject)
	m.Message = trim(m.Message)
	if m.Status == "" {
		m.Status = MessageStatusNew
	}
}

func (m *ContactMessage) Validate() error {
	errs := fieldErrors{}
	errs.require("name", m.Name)
	errs.require("email", m.Email)
	errs.require("subject", m.Subject)
	errs.require("message", m.Message)
	if m.Email != "" {
		if _, err := mail.ParseAddress(m.Email); err != nil {
			errs["email"] = "must be a valid email"
		}
	}
	if !m.Status.Valid() {
		errs["status"] = "must be a valid message status"
	}
	return errs.err()
}
