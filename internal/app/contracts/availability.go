package contracts

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GetAvailabilityForDate(ctx context.Context, request *requests.GetAvailabilityForDate) (*responses.DateAvailability, error)
	SelectEditorDate(ctx context.Context, request *requests.SelectEditorDate) (*responses.EditorState, error)
	StageWindow(ctx context.Context, request *requests.StageAvailability) (*responses.EditorState, error)
	CommitWindow(ctx context.Context, request *requests.CommitAvailability) (*responses.EditorState, error)
	RemoveStagedWindow(ctx context.Context, request *requests.RemoveStagedWindow) (*responses.EditorState, error)
	GetEditorState(ctx context.Context, request *requests.GetEditorState) (*responses.EditorState, error)
	RemoveWindow(ctx context.Context, request *requests.RemoveAvailability) error
}

type AvailabilityRepository interface {
	FindByStudioAndDateRange(ctx context.Context, studioID, fromDate, toDate string) ([]models.AvailabilityWindow, error)
	FindByStudioAndDate(ctx context.Context, studioID, date string) ([]models.AvailabilityWindow, error)
	FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error)
	CountOverlapping(ctx context.Context, studioID, date, startTime, endTime string) (int, error)
	CreateWindow(ctx context.Context, window *models.AvailabilityWindow) (*models.AvailabilityWindow, error)
	DeleteWindow(ctx context.Context, windowID string) error
	FindAvailableDates(ctx context.Context, studioID, fromDate, toDate string) ([]string, error)
}
