package projects

import (
	"context"

	"github.com/dmitrijs2005/fundraise/internal/models"
)

// Repository loads and saves the whole project collection.
type Repository interface {
	// Load returns all projects in stored order. A malformed record yields an
	// error wrapping recordio.ErrMalformedRecord.
	Load(ctx context.Context) ([]models.Project, error)

	// Save overwrites the stored collection with projects, in order.
	Save(ctx context.Context, projects []models.Project) error
}
