package users

import (
	"context"

	"github.com/dmitrijs2005/fundraise/internal/models"
)

// Repository loads and saves the whole user collection.
type Repository interface {
	// Load returns all users in stored order. A malformed record yields an
	// error wrapping recordio.ErrMalformedRecord.
	Load(ctx context.Context) ([]models.User, error)

	// Save overwrites the stored collection with users, in order.
	Save(ctx context.Context, users []models.User) error
}
