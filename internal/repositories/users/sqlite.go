package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fundraise/internal/dbx"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
)

// SQLiteRepository keeps users in the users table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns every user ordered by id. A row whose columns cannot be
// decoded is reported as recordio.ErrMalformedRecord.
func (r *SQLiteRepository) Load(ctx context.Context) ([]models.User, error) {
	query := `select id, first_name, last_name, email, password_hash, phone_number from users order by id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%w: user row %d: %v", recordio.ErrMalformedRecord, len(result)+1, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return result, nil
}

// Save replaces the table contents in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, users []models.User) error {
	args := make([][]any, 0, len(users))
	for _, u := range users {
		args = append(args, []any{u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber})
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from users`); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		query := `insert into users (id, first_name, last_name, email, password_hash, phone_number) values (?, ?, ?, ?, ?, ?)`
		if err := dbx.ExecEach(ctx, tx, query, args); err != nil {
			return fmt.Errorf("failed to insert users: %w", err)
		}
		return nil
	})
}
