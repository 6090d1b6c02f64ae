package contracts

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
)

type CalendarUsecase interface {
	GetMonthGrid(ctx context.Context, request *requests.GetMonthGrid) (*responses.MonthGrid, error)
}
