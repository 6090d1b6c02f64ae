package contracts

import (
	"context"
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	RequestBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error)
	ConfirmBooking(ctx context.Context, request *requests.ConfirmBooking) (*responses.Booking, error)
	CancelBooking(ctx context.Context, request *requests.CancelBooking) (*responses.Booking, error)
	GetBookingsForMonth(ctx context.Context, request *requests.GetBookingsForMonth) (*responses.BookingMonth, error)
	GetBookingsForDay(ctx context.Context, request *requests.GetBookingsForDay) (*responses.DayBookings, error)
	CompleteElapsedBookings(ctx context.Context) (int, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindActiveByStudioAndInterval(ctx context.Context, studioID string, start, end time.Time) ([]models.Booking, error)
	FindActiveByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error)
	FindActiveByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error)
	FindByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error)
	FindByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	FindElapsedConfirmed(ctx context.Context, asOf time.Time, limit int) ([]models.Booking, error)
}

type BookingEventRepository interface {
	InsertEvent(ctx context.Context, event *models.BookingEvent) (string, error)
	FindEventsByBookingID(ctx context.Context, bookingID string) ([]models.BookingEvent, error)
}
