package testutil

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

type FakeProjectRepo struct{ col memCol[entity.Project] }

func NewFakeProjectRepo() *FakeProjectRepo {
	return &FakeProjectRepo{col: memCol[entity.Project]{
		id:    func(p *entity.Project) *primitive.ObjectID { return &p.ID },
		times: func(p *entity.Project) (*time.Time, *time.Time) { return &p.CreatedAt, &p.UpdatedAt },
		label: "project",
	}}
}

func (r *FakeProjectRepo) List(_ context.Context, f repository.ProjectFilter) ([]entity.Project, error) {
	return r.col.list(func(p entity.Project) bool {
		if f.Featured != nil && p.Featured != *f.Featured {
			return false
		}
		return f.Category == "" || p.Category == f.Category
	}, func(a, b entity.Project) bool { return a.CreatedAt.After(b.CreatedAt) }, f.Limit), nil
}

func (r *FakeProjectRepo) Get(_ context.Context, id string) (*entity.Project, error) {
	return r.col.get(id)
}

func (r *FakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	return r.col.create(p)
}

func (r *FakeProjectRepo) Update(_ context.Context, id string, p *entity.Project) error {
	return r.col.update(id, p)
}

func (r *FakeProjectRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

func (r *FakeProjectRepo) Count(_ context.Context) (int64, error) {
	return r.col.count()
}

type FakeResearchRepo struct{ col memCol[entity.Research] }

func NewFakeResearchRepo() *FakeResearchRepo {
	return &FakeResearchRepo{col: memCol[entity.Research]{
		id:    func(v *entity.Research) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Research) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "research",
	}}
}

func (r *FakeResearchRepo) List(_ context.Context, f repository.ResearchFilter) ([]entity.Research, error) {
	return r.col.list(func(v entity.Research) bool {
		if f.Featured != nil && v.Featured != *f.Featured {
			return false
		}
		return f.Venue == "" || v.Venue == f.Venue
	}, func(a, b entity.Research) bool {
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.CreatedAt.After(b.CreatedAt)
	}, f.Limit), nil
}

func (r *FakeResearchRepo) Get(_ context.Context, id string) (*entity.Research, error) {
	return r.col.get(id)
}

func (r *FakeResearchRepo) Create(_ context.Context, v *entity.Research) error {
	return r.col.create(v)
}

func (r *FakeResearchRepo) Update(_ context.Context, id string, v *entity.Research) error {
	return r.col.update(id, v)
}

func (r *FakeResearchRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

func (r *FakeResearchRepo) Count(_ context.Context) (int64, error) {
	return r.col.count()
}

type FakeExperienceRepo struct{ col memCol[entity.Experience] }

func NewFakeExperienceRepo() *FakeExperienceRepo {
	return &FakeExperienceRepo{col: memCol[entity.Experience]{
		id:    func(v *entity.Experience) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Experience) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "experience",
	}}
}

func (r *FakeExperienceRepo) List(_ context.Context) ([]entity.Experience, error) {
	return r.col.list(nil, func(a, b entity.Experience) bool { return a.StartDate > b.StartDate }, 0), nil
}

func (r *FakeExperienceRepo) Get(_ context.Context, id string) (*entity.Experience, error) {
	return r.col.get(id)
}

func (r *FakeExperienceRepo) Create(_ context.Context, v *entity.Experience) error {
	return r.col.create(v)
}

func (r *FakeExperienceRepo) Update(_ context.Context, id string, v *entity.Experience) error {
	return r.col.update(id, v)
}

func (r *FakeExperienceRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

type FakeEducationRepo struct{ col memCol[entity.Education] }

func NewFakeEducationRepo() *FakeEducationRepo {
	return &FakeEducationRepo{col: memCol[entity.Education]{
		id:    func(v *entity.Education) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Education) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "education",
	}}
}

func (r *FakeEducationRepo) List(_ context.Context) ([]entity.Education, error) {
	return r.col.list(nil, func(a, b entity.Education) bool { return a.StartDate > b.StartDate }, 0), nil
}

func (r *FakeEducationRepo) Get(_ context.Context, id string) (*entity.Education, error) {
	return r.col.get(id)
}

func (r *FakeEducationRepo) Create(_ context.Context, v *entity.Education) error {
	return r.col.create(v)
}

func (r *FakeEducationRepo) Update(_ context.Context, id string, v *entity.Education) error {
	return r.col.update(id, v)
}

func (r *FakeEducationRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

type FakeAwardRepo struct{ col memCol[entity.Award] }

func NewFakeAwardRepo() *FakeAwardRepo {
	return &FakeAwardRepo{col: memCol[entity.Award]{
		id:    func(v *entity.Award) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Award) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "award",
	}}
}

func (r *FakeAwardRepo) List(_ context.Context, f repository.AwardFilter) ([]entity.Award, error) {
	return r.col.list(func(v entity.Award) bool {
		if f.Featured != nil && v.Featured != *f.Featured {
			return false
		}
		return f.Category == "" || v.Category == f.Category
	}, func(a, b entity.Award) bool { return a.Year > b.Year }, 0), nil
}

func (r *FakeAwardRepo) Get(_ context.Context, id string) (*entity.Award, error) {
	return r.col.get(id)
}

func (r *FakeAwardRepo) Create(_ context.Context, v *entity.Award) error {
	return r.col.create(v)
}

func (r *FakeAwardRepo) Update(_ context.Context, id string, v *entity.Award) error {
	return r.col.update(id, v)
}

func (r *FakeAwardRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

func (r *FakeAwardRepo) Count(_ context.Context) (int64, error) {
	return r.col.count()
}

type FakeSpeakingRepo struct{ col memCol[entity.Speaking] }

func NewFakeSpeakingRepo() *FakeSpeakingRepo {
	return &FakeSpeakingRepo{col: memCol[entity.Speaking]{
		id:    func(v *entity.Speaking) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Speaking) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "speaking engagement",
	}}
}

func (r *FakeSpeakingRepo) List(_ context.Context, f repository.SpeakingFilter) ([]entity.Speaking, error) {
	return r.col.list(func(v entity.Speaking) bool {
		return f.Featured == nil || v.Featured == *f.Featured
	}, func(a, b entity.Speaking) bool { return a.Date > b.Date }, f.Limit), nil
}

func (r *FakeSpeakingRepo) Get(_ context.Context, id string) (*entity.Speaking, error) {
	return r.col.get(id)
}

func (r *FakeSpeakingRepo) Create(_ context.Context, v *entity.Speaking) error {
	return r.col.create(v)
}

func (r *FakeSpeakingRepo) Update(_ context.Context, id string, v *entity.Speaking) error {
	return r.col.update(id, v)
}

func (r *FakeSpeakingRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

func (r *FakeSpeakingRepo) Count(_ context.Context) (int64, error) {
	return r.col.count()
}

type FakeSkillRepo struct{ col memCol[entity.Skill] }

func NewFakeSkillRepo() *FakeSkillRepo {
	return &FakeSkillRepo{col: memCol[entity.Skill]{
		id:    func(v *entity.Skill) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.Skill) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "skill",
	}}
}

func (r *FakeSkillRepo) List(_ context.Context, f repository.SkillFilter) ([]entity.Skill, error) {
	return r.col.list(func(v entity.Skill) bool {
		if f.Featured != nil && v.Featured != *f.Featured {
			return false
		}
		return f.Category == "" || v.Category == f.Category
	}, func(a, b entity.Skill) bool { return a.Level > b.Level }, 0), nil
}

func (r *FakeSkillRepo) Get(_ context.Context, id string) (*entity.Skill, error) {
	return r.col.get(id)
}

func (r *FakeSkillRepo) Create(_ context.Context, v *entity.Skill) error {
	return r.col.create(v)
}

func (r *FakeSkillRepo) Update(_ context.Context, id string, v *entity.Skill) error {
	return r.col.update(id, v)
}

func (r *FakeSkillRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

type FakeContactRepo struct{ col memCol[entity.ContactMessage] }

func NewFakeContactRepo() *FakeContactRepo {
	return &FakeContactRepo{col: memCol[entity.ContactMessage]{
		id:    func(v *entity.ContactMessage) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.ContactMessage) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "message",
	}}
}

func (r *FakeContactRepo) List(_ context.Context, f repository.MessageFilter) ([]entity.ContactMessage, error) {
	return r.col.list(func(v entity.ContactMessage) bool {
		return f.Status == "" || v.Status == f.Status
	}, func(a, b entity.ContactMessage) bool { return a.CreatedAt.After(b.CreatedAt) }, f.Limit), nil
}

func (r *FakeContactRepo) Get(_ context.Context, id string) (*entity.ContactMessage, error) {
	return r.col.get(id)
}

func (r *FakeContactRepo) Create(_ context.Context, v *entity.ContactMessage) error {
	return r.col.create(v)
}

func (r *FakeContactRepo) UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) (*entity.ContactMessage, error) {
	msg, err := r.col.get(id)
	if err != nil {
		return nil, err
	}
	msg.Status = status
	if err := r.col.update(id, msg); err != nil {
		return nil, err
	}
	return r.col.get(id)
}

func (r *FakeContactRepo) Delete(_ context.Context, id string) error {
	return r.col.delete(id)
}

// FakeUserRepo enforces the unique-email semantics of the real collection.
type FakeUserRepo struct{ col memCol[entity.User] }

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{col: memCol[entity.User]{
		id:    func(v *entity.User) *primitive.ObjectID { return &v.ID },
		times: func(v *entity.User) (*time.Time, *time.Time) { return &v.CreatedAt, &v.UpdatedAt },
		label: "user",
	}}
}

func (r *FakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if existing, _ := r.GetByEmail(ctx, u.Email); existing != nil {
		return apperr.Conflict("user already exists")
	}
	return r.col.create(u)
}

func (r *FakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.col.get(id)
}

func (r *FakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	users := r.col.list(func(u entity.User) bool { return u.Email == email }, nil, 1)
	if len(users) == 0 {
		return nil, apperr.NotFound("user not found")
	}
	out := users[0]
	return &out, nil
}

var (
	_ repository.ProjectRepository    = (*FakeProjectRepo)(nil)
	_ repository.ResearchRepository   = (*FakeResearchRepo)(nil)
	_ repository.ExperienceRepository = (*FakeExperienceRepo)(nil)
	_ repository.EducationRepository  = (*FakeEducationRepo)(nil)
	_ repository.AwardRepository      = (*FakeAwardRepo)(nil)
	_ repository.SpeakingRepository   = (*FakeSpeakingRepo)(nil)
	_ repository.SkillRepository      = (*FakeSkillRepo)(nil)
	_ repository.ContactRepository    = (*FakeContactRepo)(nil)
	_ repository.UserRepository       = (*FakeUserRepo)(nil)
)
