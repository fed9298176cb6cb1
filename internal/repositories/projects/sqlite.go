package projects

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fundraise/internal/dbx"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
)

// SQLiteRepository keeps projects in the projects table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns every project ordered by id. A row whose columns cannot be
// decoded is reported as recordio.ErrMalformedRecord.
func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Project, error) {
	query := `select id, title, details, target, start_time, end_time, owner_id from projects order by id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	result := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Details, &p.Target, &p.StartTime, &p.EndTime, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: project row %d: %v", recordio.ErrMalformedRecord, len(result)+1, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	return result, nil
}

// Save replaces the table contents in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, projects []models.Project) error {
	args := make([][]any, 0, len(projects))
	for _, p := range projects {
		args = append(args, []any{p.ID, p.Title, p.Details, p.Target.String(), p.StartTime.String(), p.EndTime.String(), p.OwnerID})
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from projects`); err != nil {
			return fmt.Errorf("failed to clear projects: %w", err)
		}
		query := `insert into projects (id, title, details, target, start_time, end_time, owner_id) values (?, ?, ?, ?, ?, ?, ?)`
		if err := dbx.ExecEach(ctx, tx, query, args); err != nil {
			return fmt.Errorf("failed to insert projects: %w", err)
		}
		return nil
	})
}
