package contracts

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
)

type ArtistRepository interface {
	FindByID(ctx context.Context, artistID string) (*models.Artist, error)
	FindByUserID(ctx context.Context, userID string) (*models.Artist, error)
}
