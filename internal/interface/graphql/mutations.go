package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

func (r *Resolver) mutationFields() graphql.Fields {
	return graphql.Fields{
		"login": &graphql.Field{
			Type: nnString,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: nnString},
				"password": &graphql.ArgumentConfig{Type: nnString},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				token, err := r.Auth.Login(p.Context, strArg(p, "email"), strArg(p, "password"))
				if err != nil {
					return nil, r.wrap(err, "login")
				}
				return token, nil
			},
		},
		"register": &graphql.Field{
			Type: nnString,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: nnString},
				"password": &graphql.ArgumentConfig{Type: nnString},
				"name":     &graphql.ArgumentConfig{Type: nnString},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				token, err := r.Auth.Register(p.Context, strArg(p, "email"), strArg(p, "password"), strArg(p, "name"))
				if err != nil {
					return nil, r.wrap(err, "register")
				}
				return token, nil
			},
		},

		"createProject": &graphql.Field{
			Type: projectType,
			Args: inputArgs(projectInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := projectFromInput(inputArg(p))
				if err := r.Portfolio.CreateProject(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createProject")
				}
				return toMap(item)
			},
		},
		"updateProject": &graphql.Field{
			Type: projectType,
			Args: idInputArgs(projectInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := projectFromInput(inputArg(p))
				if err := r.Portfolio.UpdateProject(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateProject")
				}
				return toMap(item)
			},
		},
		"deleteProject": r.deleteField("deleteProject", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteProject(p.Context, idArg(p))
		}),

		"createResearch": &graphql.Field{
			Type: researchType,
			Args: inputArgs(researchInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := researchFromInput(inputArg(p))
				if err := r.Portfolio.CreateResearch(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createResearch")
				}
				return toMap(item)
			},
		},
		"updateResearch": &graphql.Field{
			Type: researchType,
			Args: idInputArgs(researchInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := researchFromInput(inputArg(p))
				if err := r.Portfolio.UpdateResearch(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateResearch")
				}
				return toMap(item)
			},
		},
		"deleteResearch": r.deleteField("deleteResearch", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteResearch(p.Context, idArg(p))
		}),

		"createExperience": &graphql.Field{
			Type: experienceType,
			Args: inputArgs(experienceInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := experienceFromInput(inputArg(p))
				if err := r.Portfolio.CreateExperience(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createExperience")
				}
				return toMap(item)
			},
		},
		"updateExperience": &graphql.Field{
			Type: experienceType,
			Args: idInputArgs(experienceInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := experienceFromInput(inputArg(p))
				if err := r.Portfolio.UpdateExperience(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateExperience")
				}
				return toMap(item)
			},
		},
		"deleteExperience": r.deleteField("deleteExperience", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteExperience(p.Context, idArg(p))
		}),

		"createEducation": &graphql.Field{
			Type: educationType,
			Args: inputArgs(educationInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := educationFromInput(inputArg(p))
				if err := r.Portfolio.CreateEducation(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createEducation")
				}
				return toMap(item)
			},
		},
		"updateEducation": &graphql.Field{
			Type: educationType,
			Args: idInputArgs(educationInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := educationFromInput(inputArg(p))
				if err := r.Portfolio.UpdateEducation(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateEducation")
				}
				return toMap(item)
			},
		},
		"deleteEducation": r.deleteField("deleteEducation", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteEducation(p.Context, idArg(p))
		}),

		"createAward": &graphql.Field{
			Type: awardType,
			Args: inputArgs(awardInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := awardFromInput(inputArg(p))
				if err := r.Portfolio.CreateAward(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createAward")
				}
				return toMap(item)
			},
		},
		"updateAward": &graphql.Field{
			Type: awardType,
			Args: idInputArgs(awardInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := awardFromInput(inputArg(p))
				if err := r.Portfolio.UpdateAward(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateAward")
				}
				return toMap(item)
			},
		},
		"deleteAward": r.deleteField("deleteAward", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteAward(p.Context, idArg(p))
		}),

		"createSpeaking": &graphql.Field{
			Type: speakingType,
			Args: inputArgs(speakingInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := speakingFromInput(inputArg(p))
				if err := r.Portfolio.CreateSpeaking(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createSpeaking")
				}
				return toMap(item)
			},
		},
		"updateSpeaking": &graphql.Field{
			Type: speakingType,
			Args: idInputArgs(speakingInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := speakingFromInput(inputArg(p))
				if err := r.Portfolio.UpdateSpeaking(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateSpeaking")
				}
				return toMap(item)
			},
		},
		"deleteSpeaking": r.deleteField("deleteSpeaking", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteSpeaking(p.Context, idArg(p))
		}),

		"createSkill": &graphql.Field{
			Type: skillType,
			Args: inputArgs(skillInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := skillFromInput(inputArg(p))
				if err := r.Portfolio.CreateSkill(p.Context, &item); err != nil {
					return nil, r.wrap(err, "createSkill")
				}
				return toMap(item)
			},
		},
		"updateSkill": &graphql.Field{
			Type: skillType,
			Args: idInputArgs(skillInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				item := skillFromInput(inputArg(p))
				if err := r.Portfolio.UpdateSkill(p.Context, idArg(p), &item); err != nil {
					return nil, r.wrap(err, "updateSkill")
				}
				return toMap(item)
			},
		},
		"deleteSkill": r.deleteField("deleteSkill", func(p graphql.ResolveParams) error {
			return r.Portfolio.DeleteSkill(p.Context, idArg(p))
		}),

		"sendContactMessage": &graphql.Field{
			Type: contactMessageType,
			Args: inputArgs(contactMessageInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				msg := messageFromInput(inputArg(p))
				if err := r.Contact.Submit(p.Context, &msg); err != nil {
					return nil, r.wrap(err, "sendContactMessage")
				}
				return toMap(msg)
			},
		},
		"updateContactMessageStatus": &graphql.Field{
			Type: contactMessageType,
			Args: graphql.FieldConfigArgument{
				"id":     &graphql.ArgumentConfig{Type: nnID},
				"status": &graphql.ArgumentConfig{Type: nnString},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if err := r.requireAdmin(p); err != nil {
					return nil, err
				}
				msg, err := r.Contact.UpdateStatus(p.Context, idArg(p), entity.MessageStatus(strArg(p, "status")))
				if err != nil {
					return nil, r.wrap(err, "updateContactMessageStatus")
				}
				return toMap(msg)
			},
		},

		"trackPageView": &graphql.Field{
			Type: analyticsType,
			Args: graphql.FieldConfigArgument{
				"page": &graphql.ArgumentConfig{Type: nnString},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				rec, err := r.Analytics.TrackPageView(p.Context, strArg(p, "page"))
				if err != nil {
					return nil, r.wrap(err, "trackPageView")
				}
				return toMap(rec)
			},
		},
	}
}

func inputArgs(input *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
}

func idInputArgs(input *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id":    &graphql.ArgumentConfig{Type: nnID},
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
}

// deleteField builds the shared shape of the delete mutations: admin-gated,
// Boolean result, true on success.
func (r *Resolver) deleteField(op string, del func(p graphql.ResolveParams) error) *graphql.Field {
	return &graphql.Field{
		Type: nnBool,
		Args: idOnlyArgs(),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			if err := r.requireAdmin(p); err != nil {
				return nil, err
			}
			if err := del(p); err != nil {
				return nil, r.wrap(err, op)
			}
			return true, nil
		},
	}
}
