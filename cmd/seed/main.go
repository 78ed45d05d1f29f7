package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/akmalhzn/portfolio-api/config"
	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/infrastructure/mongodb"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

// seed provisions the admin account plus a couple of sample records so a
// fresh database renders something.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	email := "admin@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	admin := &entity.User{
		Email:    email,
		Password: hash,
		Name:     "Portfolio Admin",
		Role:     entity.RoleAdmin,
	}
	switch err := users.Create(ctx, admin); apperr.KindOf(err) {
	case apperr.KindConflict:
		fmt.Printf("admin user already exists: %s\n", email)
	default:
		if err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
		fmt.Printf("seeded admin: id=%s email=%s password=%s\n", admin.ID.Hex(), email, password)
	}

	projects := mongodb.NewProjectRepository(db)
	sample := &entity.Project{
		Title:        "Portfolio API",
		Description:  "GraphQL + REST backend serving this portfolio.",
		Technologies: []string{"Go", "GraphQL", "MongoDB"},
		Featured:     true,
		Category:     entity.ProjectCategoryWeb,
		Status:       entity.ProjectStatusCompleted,
	}
	if err := projects.Create(ctx, sample); err != nil {
		log.Fatalf("failed to seed sample project: %v", err)
	}
	fmt.Printf("seeded project: id=%s title=%q\n", sample.ID.Hex(), sample.Title)

	skills := mongodb.NewSkillRepository(db)
	skill := &entity.Skill{
		Name:        "Go",
		Category:    entity.SkillCategoryProgramming,
		Level:       90,
		Description: "Primary backend language.",
		Featured:    true,
	}
	if err := skills.Create(ctx, skill); err != nil {
		log.Fatalf("failed to seed sample skill: %v", err)
	}
	fmt.Printf("seeded skill: id=%s name=%q\n", skill.ID.Hex(), skill.Name)
}
