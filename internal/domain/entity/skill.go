package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillCategory is the closed set of skill categories.
type SkillCategory string

const (
	SkillCategoryProgramming   SkillCategory = "programming"
	SkillCategoryCybersecurity SkillCategory = "cybersecurity"
	SkillCategoryAI            SkillCategory = "ai"
	SkillCategoryCloud         SkillCategory = "cloud"
	SkillCategoryTools         SkillCategory = "tools"
	SkillCategorySoftSkills    SkillCategory = "soft-skills"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryProgramming, SkillCategoryCybersecurity, SkillCategoryAI,
		SkillCategoryCloud, SkillCategoryTools, SkillCategorySoftSkills:
		return true
	}
	return false
}

// Skill levels are a 1-100 proficiency scale.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 100
)

type Skill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    SkillCategory      `bson:"category" json:"category"`
	Level       int                `bson:"level" json:"level"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *Skill) Normalize() {
	s.Name = trim(s.Name)
	s.Description = trim(s.Description)
	s.Icon = trim(s.Icon)
}

func (s *Skill) Validate() error {
	errs := fieldErrors{}
	errs.require("name", s.Name)
	errs.require("description", s.Description)
	if !s.Category.Valid() {
		errs["category"] = "must be a valid skill category"
	}
	if s.Level < MinSkillLevel || s.Level > MaxSkillLevel {
		errs["level"] = "must be between 1 and 100"
	}
	return errs.err()
}
