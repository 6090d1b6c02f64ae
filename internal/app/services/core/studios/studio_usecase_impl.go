package studios

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type studioUsecase struct {
	StudioRepository contracts.StudioRepository
	Log              *zap.Logger
}

var (
	studioUsecaseInstance contracts.StudioUsecase
	onceStudioUsecase     sync.Once
)

func NewStudioUsecase(
	studioRepository contracts.StudioRepository,
	logger *zap.Logger,
) contracts.StudioUsecase {
	onceStudioUsecase.Do(func() {
		instance := &studioUsecase{
			StudioRepository: studioRepository,
			Log:              logger,
		}
		studioUsecaseInstance = instance
	})
	return studioUsecaseInstance
}

func (uc *studioUsecase) GetStudioByID(ctx context.Context, studioID string) (*responses.Studio, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("studioUsecase.GetStudioByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, studioID),
	)

	studio, err := uc.StudioRepository.FindByID(ctx, studioID)
	if err != nil {
		uc.Log.Error("studioUsecase.GetStudioByID error finding studio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if studio == nil {
		return nil, exceptions.ErrStudioNotFound(nil)
	}

	response := &responses.Studio{
		StudioID:   studio.ID,
		Name:       studio.Name,
		HourlyRate: studio.HourlyRate,
	}

	uc.Log.Info("studioUsecase.GetStudioByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, studio.ID),
	)
	return response, nil
}
