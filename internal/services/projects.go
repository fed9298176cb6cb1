package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/repositories/projects"
	"github.com/dmitrijs2005/fundraise/internal/repositories/users"
	"github.com/dmitrijs2005/fundraise/internal/validation"
)

// ProjectInput is a project form as entered by the user. On update a blank
// field keeps the current value.
type ProjectInput struct {
	Title     string
	Details   string
	Target    string
	StartTime string
	EndTime   string
}

// ProjectService manages fundraising projects.
//
// Mutating operations require a session; a nil session yields
// common.ErrNotAuthenticated. Projects may only be changed by their owner.
type ProjectService interface {
	Create(ctx context.Context, sess *models.Session, in ProjectInput) (*models.Project, error)
	List(ctx context.Context) ([]models.ProjectView, error)
	Search(ctx context.Context, from, to string) ([]models.ProjectView, error)
	OwnedIDs(ctx context.Context, sess *models.Session) ([]int64, error)
	Editable(ctx context.Context, sess *models.Session, id int64) (*models.Project, error)
	Update(ctx context.Context, sess *models.Session, id int64, in ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, sess *models.Session, id int64) error
}

type projectService struct {
	projects projects.Repository
	users    users.Repository
	log      logging.Logger
}

func NewProjectService(projects projects.Repository, users users.Repository, log logging.Logger) ProjectService {
	return &projectService{projects: projects, users: users, log: log}
}

func (s *projectService) load(ctx context.Context) ([]models.Project, error) {
	all, err := s.projects.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return all, nil
}

func (s *projectService) save(ctx context.Context, all []models.Project) error {
	if err := s.projects.Save(ctx, all); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

func (s *projectService) views(ctx context.Context, list []models.Project) ([]models.ProjectView, error) {
	owners, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return models.JoinOwners(list, owners), nil
}

// resolve finds id in all and checks that sess owns it.
func resolve(all []models.Project, sess *models.Session, id int64) (int, error) {
	if sess == nil {
		return -1, common.ErrNotAuthenticated
	}
	i := slices.IndexFunc(all, func(p models.Project) bool { return p.ID == id })
	if i < 0 {
		return -1, common.ErrNotFound
	}
	if all[i].OwnerID != sess.UserID() {
		return -1, common.ErrForbidden
	}
	return i, nil
}

func (s *projectService) Create(ctx context.Context, sess *models.Session, in ProjectInput) (*models.Project, error) {
	if sess == nil {
		return nil, common.ErrNotAuthenticated
	}

	v, err := validation.CheckProject(validation.ProjectFields(in))
	if err != nil {
		return nil, err
	}

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	p := models.Project{
		ID:        models.NextProjectID(all),
		Title:     v.Title,
		Details:   v.Details,
		Target:    v.Target,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		OwnerID:   sess.UserID(),
	}
	if err := s.save(ctx, append(all, p)); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "project created", "project_id", p.ID, "owner_id", p.OwnerID)
	return &p, nil
}

func (s *projectService) List(ctx context.Context) ([]models.ProjectView, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, all)
}

func (s *projectService) Search(ctx context.Context, from, to string) ([]models.ProjectView, error) {
	bounds, err := validation.CheckSearch(from, to)
	if err != nil {
		return nil, err
	}

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Project, 0, len(all))
	for _, p := range all {
		if bounds.Contains(p.StartTime, p.EndTime) {
			matches = append(matches, p)
		}
	}

	s.log.Debug(ctx, "project search", "from", bounds.From.String(), "to", bounds.To.String(), "matches", len(matches))
	return s.views(ctx, matches)
}

func (s *projectService) OwnedIDs(ctx context.Context, sess *models.Session) ([]int64, error) {
	if sess == nil {
		return nil, common.ErrNotAuthenticated
	}

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	for _, p := range all {
		if p.OwnerID == sess.UserID() {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (s *projectService) Editable(ctx context.Context, sess *models.Session, id int64) (*models.Project, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i, err := resolve(all, sess, id)
	if err != nil {
		return nil, err
	}
	p := all[i]
	return &p, nil
}

func (s *projectService) Update(ctx context.Context, sess *models.Session, id int64, in ProjectInput) (*models.Project, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i, err := resolve(all, sess, id)
	if err != nil {
		return nil, err
	}

	fields := validation.ProjectFields(in)
	current := all[i]
	v, err := validation.CheckProjectPatch(validation.ProjectValues{
		Title:     current.Title,
		Details:   current.Details,
		Target:    current.Target,
		StartTime: current.StartTime,
		EndTime:   current.EndTime,
	}, fields)
	if err != nil {
		return nil, err
	}
	if fields.Blank() {
		return &current, nil
	}

	updated := current
	updated.Title = v.Title
	updated.Details = v.Details
	updated.Target = v.Target
	updated.StartTime = v.StartTime
	updated.EndTime = v.EndTime
	all[i] = updated

	if err := s.save(ctx, all); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "project updated", "project_id", id, "owner_id", updated.OwnerID)
	return &updated, nil
}

func (s *projectService) Delete(ctx context.Context, sess *models.Session, id int64) error {
	all, err := s.load(ctx)
	if err != nil {
		return err
	}

	i, err := resolve(all, sess, id)
	if err != nil {
		return err
	}

	if err := s.save(ctx, slices.Delete(all, i, i+1)); err != nil {
		return err
	}

	s.log.Info(ctx, "project deleted", "project_id", id, "owner_id", sess.UserID())
	return nil
}
