package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

func validProject() Project {
	return Project{
		Title:        "Intrusion detection dashboard",
		Description:  "Realtime alert triage UI",
		Technologies: []string{"Go", "React"},
		Category:     ProjectCategoryCybersecurity,
		Status:       ProjectStatusCompleted,
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Project)
		wantErr string
	}{
		{name: "valid", mutate: func(p *Project) {}},
		{
			name:    "missing title",
			mutate:  func(p *Project) { p.Title = "  " },
			wantErr: "title is required",
		},
		{
			name:    "empty technologies",
			mutate:  func(p *Project) { p.Technologies = nil },
			wantErr: "technologies is required",
		},
		{
			name:    "unknown category",
			mutate:  func(p *Project) { p.Category = "blockchain" },
			wantErr: "category must be a valid project category",
		},
		{
			name:    "unknown status",
			mutate:  func(p *Project) { p.Status = "done" },
			wantErr: "status must be a valid project status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProjectNormalizeDefaults(t *testing.T) {
	p := Project{Title: "  x  ", Technologies: []string{" Go ", ""}}
	p.Normalize()

	assert.Equal(t, "x", p.Title)
	assert.Equal(t, []string{"Go"}, p.Technologies)
	assert.Equal(t, ProjectStatusCompleted, p.Status)
}

func TestResearchYearBounds(t *testing.T) {
	base := Research{
		Title:       "Adversarial ML survey",
		Authors:     []string{"A. Author"},
		Venue:       "IEEE S&P",
		Description: "Survey",
		Status:      ResearchStatusPublished,
	}

	for _, year := range []int{MinYear, time.Now().UTC().Year(), MaxYear()} {
		r := base
		r.Year = year
		assert.NoError(t, r.Validate(), "year %d should be accepted", year)
	}
	for _, year := range []int{0, MinYear - 1, MaxYear() + 1} {
		r := base
		r.Year = year
		err := r.Validate()
		require.Error(t, err, "year %d should be rejected", year)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestResearchNormalizeDefaultStatus(t *testing.T) {
	r := Research{}
	r.Normalize()
	assert.Equal(t, ResearchStatusPublished, r.Status)
}

func TestSkillLevelBounds(t *testing.T) {
	base := Skill{Name: "Go", Category: SkillCategoryProgramming, Description: "lang"}

	for _, level := range []int{MinSkillLevel, 50, MaxSkillLevel} {
		s := base
		s.Level = level
		assert.NoError(t, s.Validate())
	}
	for _, level := range []int{0, -1, MaxSkillLevel + 1} {
		s := base
		s.Level = level
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "level must be between 1 and 100")
	}
}

func TestContactMessageValidate(t *testing.T) {
	msg := ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	}
	msg.Normalize()
	require.NoError(t, msg.Validate())
	assert.Equal(t, MessageStatusNew, msg.Status)

	msg.Email = "not-an-address"
	err := msg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
}

func TestValidationErrorJoinsSortedFields(t *testing.T) {
	p := Project{}
	err := p.Validate()
	require.Error(t, err)

	// Fields are reported deterministically, alphabetical order.
	msg := apperr.MessageOf(err)
	fields := strings.Split(msg, "; ")
	assert.True(t, len(fields) >= 3)
	for i := 1; i < len(fields); i++ {
		assert.LessOrEqual(t, fields[i-1], fields[i])
	}
}

func TestClosedEnumSets(t *testing.T) {
	assert.True(t, MessageStatusArchived.Valid())
	assert.False(t, MessageStatus("spam").Valid())
	assert.True(t, AwardCategoryAcademic.Valid())
	assert.False(t, AwardCategory("other").Valid())
	assert.True(t, ProjectCategoryTool.Valid())
	assert.False(t, ProjectCategory("").Valid())
}

func TestTodayUsesUTCCalendarDay(t *testing.T) {
	got := Today()
	parsed, err := time.Parse(DateLayout, got)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(DateLayout), parsed.Format(DateLayout))
}
