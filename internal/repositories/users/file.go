package users

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/filex"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
)

// FileRepository keeps users in a JSON-lines file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository over path, creating an empty file
// when none exists.
func NewFileRepository(path string) (*FileRepository, error) {
	if err := filex.EnsureFile(path); err != nil {
		return nil, fmt.Errorf("users file: %w", err)
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Load(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	users, err := recordio.Decode[models.User](f)
	if err != nil {
		return nil, fmt.Errorf("load users from %s: %w", r.path, err)
	}
	return users, nil
}

func (r *FileRepository) Save(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := filex.WriteFileAtomic(r.path, func(w io.Writer) error {
		return recordio.Encode(w, users)
	})
	if err != nil {
		return fmt.Errorf("save users to %s: %w", r.path, err)
	}
	return nil
}
