package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/model"
	"github.com/sakif/taskmanager/internal/repository"
)

// ProjectService handles project CRUD rules.
//
// There is no ownership enforcement anywhere in this service: any caller may
// list, update, or delete any project by id. That is the contract, not an
// oversight — see the handler docs.
type ProjectService struct {
	repo   repository.ProjectRepository
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. The caller decides which
// repository implementation to inject (SQLite in production, a fake in tests).
func NewProjectService(repo repository.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and saves a new project, returning the generated id.
//
// Validation is a presence check on the body fields only — empty name or
// empty description is rejected with one generic message. The owner id was
// already parsed out of the path by the handler and is taken as-is here:
// it is NOT checked against the users table, and 0 is a legal owner.
func (s *ProjectService) Create(ctx context.Context, userID int64, name, description string) (int64, error) {
	if name == "" || description == "" {
		return 0, apperror.ValidationFailed("", "Missing required fields")
	}

	project := &model.Project{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error("failed to create project",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("service/project: creating project: %w", err)
	}

	s.logger.Info("project created",
		slog.Int64("projectID", project.ID),
		slog.Int64("userID", userID),
	)

	return project.ID, nil
}

// List returns every project — unfiltered by owner, unsorted, unpaginated.
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, fmt.Errorf("service/project: listing projects: %w", err)
	}
	return projects, nil
}

// Update replaces a project's name and description.
//
// Both fields are required — there is no partial update of a single field.
// A zero-rows-affected update propagates as NotFound from the repository.
func (s *ProjectService) Update(ctx context.Context, id int64, name, description string) error {
	if name == "" || description == "" {
		return apperror.ValidationFailed("", "Project name and description are required")
	}

	if err := s.repo.Update(ctx, id, name, description); err != nil {
		return err
	}

	s.logger.Info("project updated", slog.Int64("projectID", id))
	return nil
}

// Delete removes a project by id. NotFound propagates from the repository.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", slog.Int64("projectID", id))
	return nil
}
