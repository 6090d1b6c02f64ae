package calendar

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type calendarUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	BookingRepository      contracts.BookingRepository
	StudioRepository       contracts.StudioRepository
	ArtistRepository       contracts.ArtistRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

var (
	calendarUsecaseInstance contracts.CalendarUsecase
	onceCalendarUsecase     sync.Once
)

func NewCalendarUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	bookingRepository contracts.BookingRepository,
	studioRepository contracts.StudioRepository,
	artistRepository contracts.ArtistRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.CalendarUsecase {
	onceCalendarUsecase.Do(func() {
		instance := &calendarUsecase{
			AvailabilityRepository: availabilityRepository,
			BookingRepository:      bookingRepository,
			StudioRepository:       studioRepository,
			ArtistRepository:       artistRepository,
			SessionService:         sessionService,
			Log:                    logger,
		}
		calendarUsecaseInstance = instance
	})
	return calendarUsecaseInstance
}

// GetMonthGrid renders the month view: the fixed 42-cell grid with the
// caller's overlays. Owners see their own studio's availability and live
// bookings; artists see their own live bookings, plus the availability of
// one studio when they pass its id while browsing. Filler cells of the
// neighbouring months stay bare.
func (uc *calendarUsecase) GetMonthGrid(ctx context.Context, request *requests.GetMonthGrid) (*responses.MonthGrid, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("calendarUsecase.GetMonthGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingYearKey, request.Year),
		zap.Int(constvars.LoggingMonthKey, request.Month),
	)

	if request.Month < 1 || request.Month > 12 {
		return nil, exceptions.ErrInvalidFormat(nil, "month")
	}
	if request.Year < 1 {
		return nil, exceptions.ErrInvalidFormat(nil, "year")
	}

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	month := time.Month(request.Month)
	grid := buildMonthGrid(request.Year, month, time.Now())

	monthStart := time.Date(request.Year, month, 1, 0, 0, 0, 0, time.Local)
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	lastOfMonth := nextMonthStart.AddDate(0, 0, -1)

	var availabilityStudioID string
	var bookings []models.Booking

	switch {
	case session.IsStudioOwner():
		studioID, err := uc.resolveStudioID(ctx, session)
		if err != nil {
			return nil, err
		}
		availabilityStudioID = studioID
		bookings, err = uc.BookingRepository.FindActiveByStudioAndRange(ctx, studioID, monthStart, nextMonthStart)
		if err != nil {
			uc.Log.Error("calendarUsecase.GetMonthGrid error finding studio bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	case session.IsArtist():
		artistID, err := uc.resolveArtistID(ctx, session)
		if err != nil {
			return nil, err
		}
		if request.StudioID != "" {
			studio, err := uc.StudioRepository.FindByID(ctx, request.StudioID)
			if err != nil {
				uc.Log.Error("calendarUsecase.GetMonthGrid error finding studio",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return nil, err
			}
			if studio == nil {
				return nil, exceptions.ErrStudioNotFound(nil)
			}
			availabilityStudioID = studio.ID
		}
		bookings, err = uc.BookingRepository.FindActiveByArtistAndRange(ctx, artistID, monthStart, nextMonthStart)
		if err != nil {
			uc.Log.Error("calendarUsecase.GetMonthGrid error finding artist bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	default:
		return nil, exceptions.ErrNotAuthorizedAction(nil)
	}

	// Overlays land on in-month cells only; filler cells are not indexed.
	cellIndexByDate := make(map[string]int, len(grid))
	for i := range grid {
		if grid[i].IsCurrentMonth {
			cellIndexByDate[grid[i].Date] = i
		}
	}

	if availabilityStudioID != "" {
		availableDates, err := uc.AvailabilityRepository.FindAvailableDates(
			ctx,
			availabilityStudioID,
			utils.FormatCalendarDate(monthStart),
			utils.FormatCalendarDate(lastOfMonth),
		)
		if err != nil {
			uc.Log.Error("calendarUsecase.GetMonthGrid error finding available dates",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		for _, date := range availableDates {
			if idx, ok := cellIndexByDate[date]; ok {
				grid[idx].HasAvailability = true
			}
		}
	}

	for i := range bookings {
		booking := bookings[i]
		idx, ok := cellIndexByDate[utils.FormatCalendarDate(booking.StartDatetime)]
		if !ok {
			continue
		}
		if len(grid[idx].Bookings) < constvars.CalendarMaxBookingsPerCell {
			grid[idx].Bookings = append(grid[idx].Bookings, *toBookingResponse(&booking))
		} else {
			grid[idx].MoreBookings++
		}
	}

	uc.Log.Info("calendarUsecase.GetMonthGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return &responses.MonthGrid{
		Year:  request.Year,
		Month: request.Month,
		Cells: grid,
	}, nil
}

func (uc *calendarUsecase) resolveStudioID(ctx context.Context, session *models.Session) (string, error) {
	if session.StudioID != "" {
		return session.StudioID, nil
	}
	studio, err := uc.StudioRepository.FindByOwnerUserID(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	if studio == nil {
		return "", exceptions.ErrStudioNotFound(nil)
	}
	return studio.ID, nil
}

func (uc *calendarUsecase) resolveArtistID(ctx context.Context, session *models.Session) (string, error) {
	if session.ArtistID != "" {
		return session.ArtistID, nil
	}
	artist, err := uc.ArtistRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	if artist == nil {
		return "", exceptions.ErrArtistNotFound(nil)
	}
	return artist.ID, nil
}

func toBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		BookingID:     booking.ID,
		StudioID:      booking.StudioID,
		StudioName:    booking.StudioName,
		ArtistID:      booking.ArtistID,
		ArtistName:    booking.ArtistName,
		StartDatetime: utils.FormatLocalDatetime(booking.StartDatetime),
		EndDatetime:   utils.FormatLocalDatetime(booking.EndDatetime),
		Status:        string(booking.Status),
	}
}
