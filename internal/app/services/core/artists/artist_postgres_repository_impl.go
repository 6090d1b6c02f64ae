package artists

import (
	"context"
	"database/sql"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/queries"
)

type artistPostgresRepository struct {
	DB *sql.DB
}

func NewArtistPostgresRepository(db *sql.DB) contracts.ArtistRepository {
	return &artistPostgresRepository{
		DB: db,
	}
}

func (repo *artistPostgresRepository) FindByID(ctx context.Context, artistID string) (*models.Artist, error) {
	query := queries.GetArtistByID
	var artist models.Artist
	err := repo.DB.QueryRowContext(ctx, query, artistID).Scan(
		&artist.ID,
		&artist.UserID,
		&artist.Name,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &artist, nil
}

func (repo *artistPostgresRepository) FindByUserID(ctx context.Context, userID string) (*models.Artist, error) {
	query := queries.GetArtistByUserID
	var artist models.Artist
	err := repo.DB.QueryRowContext(ctx, query, userID).Scan(
		&artist.ID,
		&artist.UserID,
		&artist.Name,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &artist, nil
}
