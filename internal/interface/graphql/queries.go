package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

func idOnlyArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: nnID},
	}
}

func (r *Resolver) queryFields() graphql.Fields {
	return graphql.Fields{
		"getPortfolioStats": &graphql.Field{
			Type: portfolioStatsType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				stats, err := r.Portfolio.GetPortfolioStats(p.Context)
				if err != nil {
					return nil, r.wrap(err, "getPortfolioStats")
				}
				return toMap(stats)
			},
		},

		"getProjects": &graphql.Field{
			Type: graphql.NewList(projectType),
			Args: graphql.FieldConfigArgument{
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"category": &graphql.ArgumentConfig{Type: graphql.String},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListProjects(p.Context, repo.ProjectFilter{
					Featured: boolPtrArg(p, "featured"),
					Category: entity.ProjectCategory(strArg(p, "category")),
					Limit:    intArg(p, "limit"),
				})
				if err != nil {
					return nil, r.wrap(err, "getProjects")
				}
				return toMaps(items)
			},
		},
		"getProject": &graphql.Field{
			Type: projectType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetProject(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getProject")
				}
				return toMap(item)
			},
		},

		"getResearch": &graphql.Field{
			Type: graphql.NewList(researchType),
			Args: graphql.FieldConfigArgument{
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"venue":    &graphql.ArgumentConfig{Type: graphql.String},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListResearch(p.Context, repo.ResearchFilter{
					Featured: boolPtrArg(p, "featured"),
					Venue:    strArg(p, "venue"),
					Limit:    intArg(p, "limit"),
				})
				if err != nil {
					return nil, r.wrap(err, "getResearch")
				}
				return toMaps(items)
			},
		},
		"getResearchById": &graphql.Field{
			Type: researchType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetResearch(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getResearchById")
				}
				return toMap(item)
			},
		},

		"getExperience": &graphql.Field{
			Type: graphql.NewList(experienceType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListExperience(p.Context)
				if err != nil {
					return nil, r.wrap(err, "getExperience")
				}
				return toMaps(items)
			},
		},
		"getExperienceById": &graphql.Field{
			Type: experienceType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetExperience(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getExperienceById")
				}
				return toMap(item)
			},
		},

		"getEducation": &graphql.Field{
			Type: graphql.NewList(educationType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListEducation(p.Context)
				if err != nil {
					return nil, r.wrap(err, "getEducation")
				}
				return toMaps(items)
			},
		},
		"getEducationById": &graphql.Field{
			Type: educationType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetEducation(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getEducationById")
				}
				return toMap(item)
			},
		},

		"getAwards": &graphql.Field{
			Type: graphql.NewList(awardType),
			Args: graphql.FieldConfigArgument{
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"category": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListAwards(p.Context, repo.AwardFilter{
					Featured: boolPtrArg(p, "featured"),
					Category: entity.AwardCategory(strArg(p, "category")),
				})
				if err != nil {
					return nil, r.wrap(err, "getAwards")
				}
				return toMaps(items)
			},
		},
		"getAwardById": &graphql.Field{
			Type: awardType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetAward(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getAwardById")
				}
				return toMap(item)
			},
		},

		"getSpeaking": &graphql.Field{
			Type: graphql.NewList(speakingType),
			Args: graphql.FieldConfigArgument{
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListSpeaking(p.Context, repo.SpeakingFilter{
					Featured: boolPtrArg(p, "featured"),
					Limit:    intArg(p, "limit"),
				})
				if err != nil {
					return nil, r.wrap(err, "getSpeaking")
				}
				return toMaps(items)
			},
		},
		"getSpeakingById": &graphql.Field{
			Type: speakingType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetSpeaking(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getSpeakingById")
				}
				return toMap(item)
			},
		},

		"getSkills": &graphql.Field{
			Type: graphql.NewList(skillType),
			Args: graphql.FieldConfigArgument{
				"category": &graphql.ArgumentConfig{Type: graphql.String},
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				items, err := r.Portfolio.ListSkills(p.Context, repo.SkillFilter{
					Featured: boolPtrArg(p, "featured"),
					Category: entity.SkillCategory(strArg(p, "category")),
				})
				if err != nil {
					return nil, r.wrap(err, "getSkills")
				}
				return toMaps(items)
			},
		},
		"getSkillById": &graphql.Field{
			Type: skillType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				item, err := r.Portfolio.GetSkill(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getSkillById")
				}
				return toMap(item)
			},
		},

		"getContactMessages": &graphql.Field{
			Type: graphql.NewList(contactMessageType),
			Args: graphql.FieldConfigArgument{
				"status": &graphql.ArgumentConfig{Type: graphql.String},
				"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				items, err := r.Contact.List(p.Context, repo.MessageFilter{
					Status: entity.MessageStatus(strArg(p, "status")),
					Limit:  intArg(p, "limit"),
				})
				if err != nil {
					return nil, r.wrap(err, "getContactMessages")
				}
				return toMaps(items)
			},
		},
		"getContactMessageById": &graphql.Field{
			Type: contactMessageType,
			Args: idOnlyArgs(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item, err := r.Contact.Get(p.Context, idArg(p))
				if err != nil {
					return nil, r.wrap(err, "getContactMessageById")
				}
				return toMap(item)
			},
		},

		"getAnalytics": &graphql.Field{
			Type: graphql.NewList(analyticsType),
			Args: graphql.FieldConfigArgument{
				"page":  &graphql.ArgumentConfig{Type: graphql.String},
				"date":  &graphql.ArgumentConfig{Type: graphql.String},
				"limit": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				items, err := r.Analytics.List(p.Context, repo.AnalyticsFilter{
					Page:  strArg(p, "page"),
					Date:  strArg(p, "date"),
					Limit: intArg(p, "limit"),
				})
				if err != nil {
					return nil, r.wrap(err, "getAnalytics")
				}
				return toMaps(items)
			},
		},
		"getAnalyticsStats": &graphql.Field{
			Type: portfolioStatsType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				stats, err := r.Portfolio.GetAnalyticsStats(p.Context)
				if err != nil {
					return nil, r.wrap(err, "getAnalyticsStats")
				}
				return toMap(stats)
			},
		},
	}
}
