package studios

import (
	"context"
	"database/sql"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/queries"
)

type studioPostgresRepository struct {
	DB *sql.DB
}

func NewStudioPostgresRepository(db *sql.DB) contracts.StudioRepository {
	return &studioPostgresRepository{
		DB: db,
	}
}

func (repo *studioPostgresRepository) FindByID(ctx context.Context, studioID string) (*models.Studio, error) {
	query := queries.GetStudioByID
	var studio models.Studio
	err := repo.DB.QueryRowContext(ctx, query, studioID).Scan(
		&studio.ID,
		&studio.OwnerUserID,
		&studio.Name,
		&studio.HourlyRate,
		&studio.CreatedAt,
		&studio.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &studio, nil
}

func (repo *studioPostgresRepository) FindByOwnerUserID(ctx context.Context, ownerUserID string) (*models.Studio, error) {
	query := queries.GetStudioByOwnerUserID
	var studio models.Studio
	err := repo.DB.QueryRowContext(ctx, query, ownerUserID).Scan(
		&studio.ID,
		&studio.OwnerUserID,
		&studio.Name,
		&studio.HourlyRate,
		&studio.CreatedAt,
		&studio.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &studio, nil
}
