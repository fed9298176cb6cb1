package projects

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/filex"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
)

// FileRepository keeps projects in a JSON-lines file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository over path, creating an empty file
// when none exists.
func NewFileRepository(path string) (*FileRepository, error) {
	if err := filex.EnsureFile(path); err != nil {
		return nil, fmt.Errorf("projects file: %w", err)
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Load(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open projects file: %w", err)
	}
	defer f.Close()

	projects, err := recordio.Decode[models.Project](f)
	if err != nil {
		return nil, fmt.Errorf("load projects from %s: %w", r.path, err)
	}
	return projects, nil
}

func (r *FileRepository) Save(ctx context.Context, projects []models.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := filex.WriteFileAtomic(r.path, func(w io.Writer) error {
		return recordio.Encode(w, projects)
	})
	if err != nil {
		return fmt.Errorf("save projects to %s: %w", r.path, err)
	}
	return nil
}
