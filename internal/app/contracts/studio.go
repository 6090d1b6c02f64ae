package contracts

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
)

type StudioUsecase interface {
	GetStudioByID(ctx context.Context, studioID string) (*responses.Studio, error)
}

type StudioRepository interface {
	FindByID(ctx context.Context, studioID string) (*models.Studio, error)
	FindByOwnerUserID(ctx context.Context, ownerUserID string) (*models.Studio, error)
}
