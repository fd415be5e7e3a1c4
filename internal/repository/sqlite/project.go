package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/model"
	"github.com/sakif/taskmanager/internal/repository"
)

// ProjectDB is the project-facing view of the database, handed out by
// DB.Projects().
type ProjectDB struct {
	conn *sql.DB
}

// compile-time check that *ProjectDB implements repository.ProjectRepository
var _ repository.ProjectRepository = (*ProjectDB)(nil)

// Create inserts a new project and fills project.ID with the generated rowid.
//
// No existence check on project.UserID: the column is a plain INTEGER, and
// by contract any owner id is accepted.
func (db *ProjectDB) Create(ctx context.Context, project *model.Project) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO projects (projectName, projectDescription, userId)
		 VALUES (?, ?, ?)`,
		project.Name,
		project.Description,
		project.UserID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting project %q: %w", project.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading generated project id: %w", err)
	}
	project.ID = id

	return nil
}

// List returns every project, unfiltered, in the store's natural order.
// No pagination by contract.
func (db *ProjectDB) List(ctx context.Context) ([]model.Project, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT projectId, projectName, projectDescription, userId FROM projects`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	// sql.Rows holds a pool connection until closed — leaking these
	// eventually starves the pool and hangs the server.
	defer rows.Close()

	// Non-nil empty slice so an empty table serializes as [] rather than null.
	projects := []model.Project{}

	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.UserID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning project row: %w", err)
		}
		projects = append(projects, p)
	}

	// rows.Err catches failures that happened during iteration, which
	// rows.Next silently swallows.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating projects: %w", err)
	}

	return projects, nil
}

// Update replaces the name and description of the matching project.
//
// "Not found" is detected from RowsAffected — one UPDATE instead of a
// SELECT-then-UPDATE pair. Partial updates aren't supported; both fields are
// always written.
func (db *ProjectDB) Update(ctx context.Context, id int64, name, description string) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE projects
		 SET projectName = ?, projectDescription = ?
		 WHERE projectId = ?`,
		name,
		description,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating project %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("Project not found")
	}

	return nil
}

// Delete removes the matching project. Same RowsAffected pattern as Update.
// No cascading deletes — projects own no dependent rows.
func (db *ProjectDB) Delete(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM projects WHERE projectId = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting project %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("Project not found")
	}

	return nil
}
