package graphql

import (
	"encoding/json"

	"github.com/graphql-go/graphql"
)

// Entities are handed to graphql-go as maps produced by toMap, so fields
// resolve by their JSON key and ObjectIDs/timestamps serialize as strings.

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toMaps[T any](items []T) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		m, err := toMap(items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

var (
	nnID         = graphql.NewNonNull(graphql.ID)
	nnString     = graphql.NewNonNull(graphql.String)
	nnInt        = graphql.NewNonNull(graphql.Int)
	nnBool       = graphql.NewNonNull(graphql.Boolean)
	nnStringList = graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))
)

func timestamped(fields graphql.Fields) graphql.Fields {
	fields["id"] = &graphql.Field{Type: nnID}
	fields["createdAt"] = &graphql.Field{Type: nnString}
	fields["updatedAt"] = &graphql.Field{Type: nnString}
	return fields
}

var projectType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Project",
	Fields: timestamped(graphql.Fields{
		"title":           &graphql.Field{Type: nnString},
		"description":     &graphql.Field{Type: nnString},
		"longDescription": &graphql.Field{Type: graphql.String},
		"technologies":    &graphql.Field{Type: nnStringList},
		"githubUrl":       &graphql.Field{Type: graphql.String},
		"liveUrl":         &graphql.Field{Type: graphql.String},
		"imageUrl":        &graphql.Field{Type: graphql.String},
		"featured":        &graphql.Field{Type: nnBool},
		"category":        &graphql.Field{Type: nnString},
		"status":          &graphql.Field{Type: nnString},
	}),
})

var researchType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Research",
	Fields: timestamped(graphql.Fields{
		"title":       &graphql.Field{Type: nnString},
		"authors":     &graphql.Field{Type: nnStringList},
		"venue":       &graphql.Field{Type: nnString},
		"year":        &graphql.Field{Type: nnInt},
		"description": &graphql.Field{Type: nnString},
		"abstract":    &graphql.Field{Type: graphql.String},
		"pdfUrl":      &graphql.Field{Type: graphql.String},
		"featured":    &graphql.Field{Type: nnBool},
		"status":      &graphql.Field{Type: nnString},
	}),
})

var experienceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Experience",
	Fields: timestamped(graphql.Fields{
		"company":      &graphql.Field{Type: nnString},
		"position":     &graphql.Field{Type: nnString},
		"description":  &graphql.Field{Type: nnString},
		"startDate":    &graphql.Field{Type: nnString},
		"endDate":      &graphql.Field{Type: graphql.String},
		"current":      &graphql.Field{Type: nnBool},
		"location":     &graphql.Field{Type: graphql.String},
		"technologies": &graphql.Field{Type: nnStringList},
		"achievements": &graphql.Field{Type: nnStringList},
	}),
})

var educationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Education",
	Fields: timestamped(graphql.Fields{
		"institution":  &graphql.Field{Type: nnString},
		"degree":       &graphql.Field{Type: nnString},
		"field":        &graphql.Field{Type: nnString},
		"startDate":    &graphql.Field{Type: nnString},
		"endDate":      &graphql.Field{Type: graphql.String},
		"gpa":          &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
		"achievements": &graphql.Field{Type: nnStringList},
	}),
})

var awardType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Award",
	Fields: timestamped(graphql.Fields{
		"title":        &graphql.Field{Type: nnString},
		"organization": &graphql.Field{Type: nnString},
		"year":         &graphql.Field{Type: nnInt},
		"description":  &graphql.Field{Type: nnString},
		"category":     &graphql.Field{Type: nnString},
		"featured":     &graphql.Field{Type: nnBool},
	}),
})

var speakingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Speaking",
	Fields: timestamped(graphql.Fields{
		"title":       &graphql.Field{Type: nnString},
		"event":       &graphql.Field{Type: nnString},
		"date":        &graphql.Field{Type: nnString},
		"location":    &graphql.Field{Type: nnString},
		"description": &graphql.Field{Type: nnString},
		"slidesUrl":   &graphql.Field{Type: graphql.String},
		"videoUrl":    &graphql.Field{Type: graphql.String},
		"featured":    &graphql.Field{Type: nnBool},
	}),
})

var skillType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Skill",
	Fields: timestamped(graphql.Fields{
		"name":        &graphql.Field{Type: nnString},
		"category":    &graphql.Field{Type: nnString},
		"level":       &graphql.Field{Type: nnInt},
		"description": &graphql.Field{Type: nnString},
		"icon":        &graphql.Field{Type: graphql.String},
		"featured":    &graphql.Field{Type: nnBool},
	}),
})

var contactMessageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ContactMessage",
	Fields: timestamped(graphql.Fields{
		"name":    &graphql.Field{Type: nnString},
		"email":   &graphql.Field{Type: nnString},
		"subject": &graphql.Field{Type: nnString},
		"message": &graphql.Field{Type: nnString},
		"status":  &graphql.Field{Type: nnString},
	}),
})

var analyticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Analytics",
	Fields: timestamped(graphql.Fields{
		"page":        &graphql.Field{Type: nnString},
		"views":       &graphql.Field{Type: nnInt},
		"uniqueViews": &graphql.Field{Type: nnInt},
		"date":        &graphql.Field{Type: nnString},
	}),
})

var portfolioStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PortfolioStats",
	Fields: graphql.Fields{
		"totalProjects": &graphql.Field{Type: nnInt},
		"totalResearch": &graphql.Field{Type: nnInt},
		"totalAwards":   &graphql.Field{Type: nnInt},
		"totalSpeaking": &graphql.Field{Type: nnInt},
		"totalViews":       &graphql.Field{Type: nnInt},
		"totalUniqueViews": &graphql.Field{Type: graphql.Int},
		"lastUpdated":      &graphql.Field{Type: nnString},
	},
})
