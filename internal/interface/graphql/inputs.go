package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

var projectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":           {Type: nnString},
		"description":     {Type: nnString},
		"longDescription": {Type: graphql.String},
		"technologies":    {Type: nnStringList},
		"githubUrl":       {Type: graphql.String},
		"liveUrl":         {Type: graphql.String},
		"imageUrl":        {Type: graphql.String},
		"featured":        {Type: graphql.Boolean},
		"category":        {Type: nnString},
		"status":          {Type: graphql.String},
	},
})

var researchInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ResearchInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       {Type: nnString},
		"authors":     {Type: nnStringList},
		"venue":       {Type: nnString},
		"year":        {Type: nnInt},
		"description": {Type: nnString},
		"abstract":    {Type: graphql.String},
		"pdfUrl":      {Type: graphql.String},
		"featured":    {Type: graphql.Boolean},
		"status":      {Type: graphql.String},
	},
})

var experienceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ExperienceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"company":      {Type: nnString},
		"position":     {Type: nnString},
		"description":  {Type: nnString},
		"startDate":    {Type: nnString},
		"endDate":      {Type: graphql.String},
		"current":      {Type: graphql.Boolean},
		"location":     {Type: graphql.String},
		"technologies": {Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"achievements": {Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
	},
})

var educationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EducationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"institution":  {Type: nnString},
		"degree":       {Type: nnString},
		"field":        {Type: nnString},
		"startDate":    {Type: nnString},
		"endDate":      {Type: graphql.String},
		"gpa":          {Type: graphql.String},
		"description":  {Type: graphql.String},
		"achievements": {Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
	},
})

var awardInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AwardInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":        {Type: nnString},
		"organization": {Type: nnString},
		"year":         {Type: nnInt},
		"description":  {Type: nnString},
		"category":     {Type: nnString},
		"featured":     {Type: graphql.Boolean},
	},
})

var speakingInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SpeakingInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       {Type: nnString},
		"event":       {Type: nnString},
		"date":        {Type: nnString},
		"location":    {Type: nnString},
		"description": {Type: nnString},
		"slidesUrl":   {Type: graphql.String},
		"videoUrl":    {Type: graphql.String},
		"featured":    {Type: graphql.Boolean},
	},
})

var skillInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SkillInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        {Type: nnString},
		"category":    {Type: nnString},
		"level":       {Type: nnInt},
		"description": {Type: nnString},
		"icon":        {Type: graphql.String},
		"featured":    {Type: graphql.Boolean},
	},
})

var contactMessageInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ContactMessageInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    {Type: nnString},
		"email":   {Type: nnString},
		"subject": {Type: nnString},
		"message": {Type: nnString},
	},
})

// Input maps come back from graphql-go with only the keys the client sent,
// so every getter tolerates absence and wrong dynamic types.

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func getInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func getStrings(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func inputArg(p graphql.ResolveParams) map[string]any {
	m, _ := p.Args["input"].(map[string]any)
	return m
}

func projectFromInput(m map[string]any) entity.Project {
	return entity.Project{
		Title:           getString(m, "title"),
		Description:     getString(m, "description"),
		LongDescription: getString(m, "longDescription"),
		Technologies:    getStrings(m, "technologies"),
		GithubURL:       getString(m, "githubUrl"),
		LiveURL:         getString(m, "liveUrl"),
		ImageURL:        getString(m, "imageUrl"),
		Featured:        getBool(m, "featured"),
		Category:        entity.ProjectCategory(getString(m, "category")),
		Status:          entity.ProjectStatus(getString(m, "status")),
	}
}

func researchFromInput(m map[string]any) entity.Research {
	return entity.Research{
		Title:       getString(m, "title"),
		Authors:     getStrings(m, "authors"),
		Venue:       getString(m, "venue"),
		Year:        getInt(m, "year"),
		Description: getString(m, "description"),
		Abstract:    getString(m, "abstract"),
		PdfURL:      getString(m, "pdfUrl"),
		Featured:    getBool(m, "featured"),
		Status:      entity.ResearchStatus(getString(m, "status")),
	}
}

func experienceFromInput(m map[string]any) entity.Experience {
	return entity.Experience{
		Company:      getString(m, "company"),
		Position:     getString(m, "position"),
		Description:  getString(m, "description"),
		StartDate:    getString(m, "startDate"),
		EndDate:      getString(m, "endDate"),
		Current:      getBool(m, "current"),
		Location:     getString(m, "location"),
		Technologies: getStrings(m, "technologies"),
		Achievements: getStrings(m, "achievements"),
	}
}

func educationFromInput(m map[string]any) entity.Education {
	return entity.Education{
		Institution:  getString(m, "institution"),
		Degree:       getString(m, "degree"),
		Field:        getString(m, "field"),
		StartDate:    getString(m, "startDate"),
		EndDate:      getString(m, "endDate"),
		GPA:          getString(m, "gpa"),
		Description:  getString(m, "description"),
		Achievements: getStrings(m, "achievements"),
	}
}

func awardFromInput(m map[string]any) entity.Award {
	return entity.Award{
		Title:        getString(m, "title"),
		Organization: getString(m, "organization"),
		Year:         getInt(m, "year"),
		Description:  getString(m, "description"),
		Category:     entity.AwardCategory(getString(m, "category")),
		Featured:     getBool(m, "featured"),
	}
}

func speakingFromInput(m map[string]any) entity.Speaking {
	return entity.Speaking{
		Title:       getString(m, "title"),
		Event:       getString(m, "event"),
		Date:        getString(m, "date"),
		Location:    getString(m, "location"),
		Description: getString(m, "description"),
		SlidesURL:   getString(m, "slidesUrl"),
		VideoURL:    getString(m, "videoUrl"),
		Featured:    getBool(m, "featured"),
	}
}

func skillFromInput(m map[string]any) entity.Skill {
	return entity.Skill{
		Name:        getString(m, "name"),
		Category:    entity.SkillCategory(getString(m, "category")),
		Level:       getInt(m, "level"),
		Description: getString(m, "description"),
		Icon:        getString(m, "icon"),
		Featured:    getBool(m, "featured"),
	}
}

func messageFromInput(m map[string]any) entity.ContactMessage {
	return entity.ContactMessage{
		Name:    getString(m, "name"),
		Email:   getString(m, "email"),
		Subject: getString(m, "subject"),
		Message: getString(m, "message"),
	}
}
