package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type bookingUsecase struct {
	BookingRepository      contracts.BookingRepository
	AvailabilityRepository contracts.AvailabilityRepository
	StudioRepository       contracts.StudioRepository
	ArtistRepository       contracts.ArtistRepository
	BookingEventRepository contracts.BookingEventRepository
	SessionService         contracts.SessionService
	ChangeEventPublisher   contracts.ChangeEventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	availabilityRepository contracts.AvailabilityRepository,
	studioRepository contracts.StudioRepository,
	artistRepository contracts.ArtistRepository,
	bookingEventRepository contracts.BookingEventRepository,
	sessionService contracts.SessionService,
	changeEventPublisher contracts.ChangeEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository:      bookingRepository,
			AvailabilityRepository: availabilityRepository,
			StudioRepository:       studioRepository,
			ArtistRepository:       artistRepository,
			BookingEventRepository: bookingEventRepository,
			SessionService:         sessionService,
			ChangeEventPublisher:   changeEventPublisher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// RequestBooking creates a pending booking for the calling artist. The
// interval must sit inside an available window of the studio on that date
// and must not touch any live booking. The local pre-checks give precise
// errors; the store's exclusion constraint has the final word on overlap.
func (uc *bookingUsecase) RequestBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.RequestBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotArtist() {
		return nil, exceptions.ErrNotAuthorizedAction(nil)
	}
	artistID, err := uc.resolveArtistID(ctx, session)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseLocalDatetime(request.StartDatetime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDatetime(err)
	}
	end, err := utils.ParseLocalDatetime(request.EndDatetime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDatetime(err)
	}
	if !start.Before(end) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	studio, err := uc.StudioRepository.FindByID(ctx, request.StudioID)
	if err != nil {
		uc.Log.Error("bookingUsecase.RequestBooking error finding studio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if studio == nil {
		return nil, exceptions.ErrStudioNotFound(nil)
	}

	// Windows are single-date with HH:MM bounds, so an interval that ends
	// on another date (midnight included) can never be contained by one.
	date := utils.FormatCalendarDate(start)
	if utils.FormatCalendarDate(end) != date {
		return nil, exceptions.ErrBookingOutsideAvailability(nil)
	}

	windows, err := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, date)
	if err != nil {
		uc.Log.Error("bookingUsecase.RequestBooking error finding windows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !intervalInsideAvailableWindow(windows, utils.FormatClock(start), utils.FormatClock(end)) {
		uc.Log.Warn("bookingUsecase.RequestBooking interval outside availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
		)
		return nil, exceptions.ErrBookingOutsideAvailability(nil)
	}

	overlapping, err := uc.BookingRepository.FindActiveByStudioAndInterval(ctx, request.StudioID, start, end)
	if err != nil {
		uc.Log.Error("bookingUsecase.RequestBooking error checking live bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, exceptions.ErrBookingConflict(nil)
	}

	booking := &models.Booking{
		ID:            uuid.NewString(),
		StudioID:      request.StudioID,
		ArtistID:      artistID,
		StartDatetime: start,
		EndDatetime:   end,
		Status:        models.BookingStatusPending,
	}
	createdBooking, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		uc.Log.Warn("bookingUsecase.RequestBooking insert rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.recordStatusChange(ctx, requestID, createdBooking, "", models.BookingActorArtist)

	if uc.InternalConfig.App.InstantBook {
		confirmedBooking, err := uc.BookingRepository.UpdateStatus(ctx, createdBooking.ID, string(models.BookingStatusConfirmed))
		if err != nil || confirmedBooking == nil {
			// The request itself succeeded; auto-accept failing leaves a
			// normal pending booking behind.
			uc.Log.Error("bookingUsecase.RequestBooking instant-book confirm failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, createdBooking.ID),
				zap.Error(err),
			)
		} else {
			uc.recordStatusChange(ctx, requestID, confirmedBooking, string(models.BookingStatusPending), models.BookingActorSystem)
			createdBooking = confirmedBooking
		}
	}

	uc.Log.Info("bookingUsecase.RequestBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, createdBooking.ID),
		zap.String(constvars.LoggingBookingStatusKey, string(createdBooking.Status)),
	)
	return toBookingResponse(createdBooking), nil
}

// ConfirmBooking accepts a pending request. Only the studio owner may
// confirm; artists asking for their own booking to be confirmed is exactly
// the case the role check exists for.
func (uc *bookingUsecase) ConfirmBooking(ctx context.Context, request *requests.ConfirmBooking) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.ConfirmBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotStudioOwner() {
		return nil, exceptions.ErrNotAuthorizedAction(nil)
	}
	studioID, err := uc.resolveStudioID(ctx, session)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.ConfirmBooking error finding booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	if booking.StudioID != studioID {
		return nil, exceptions.ErrNotAuthorizedAction(nil)
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusConfirmed) {
		return nil, exceptions.ErrBookingTransition(nil)
	}

	updatedBooking, err := uc.BookingRepository.UpdateStatus(ctx, booking.ID, string(models.BookingStatusConfirmed))
	if err != nil {
		uc.Log.Error("bookingUsecase.ConfirmBooking error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updatedBooking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	uc.recordStatusChange(ctx, requestID, updatedBooking, string(booking.Status), models.BookingActorOwner)

	uc.Log.Info("bookingUsecase.ConfirmBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, updatedBooking.ID),
	)
	return toBookingResponse(updatedBooking), nil
}

// CancelBooking is available to both parties of the booking. Pending
// requests cancel at any time; confirmed bookings only before their start.
// The row survives as history either way.
func (uc *bookingUsecase) CancelBooking(ctx context.Context, request *requests.CancelBooking) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error finding booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	actor, err := uc.cancellingActor(ctx, session, booking)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, exceptions.ErrBookingTransition(nil)
	}
	if booking.Status == models.BookingStatusConfirmed &&
		!time.Now().Before(utils.LocalWallClock(booking.StartDatetime)) {
		return nil, exceptions.ErrCancelAfterStart(nil)
	}

	updatedBooking, err := uc.BookingRepository.UpdateStatus(ctx, booking.ID, string(models.BookingStatusCancelled))
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updatedBooking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	uc.recordStatusChange(ctx, requestID, updatedBooking, string(booking.Status), actor)

	uc.Log.Info("bookingUsecase.CancelBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, updatedBooking.ID),
	)
	return toBookingResponse(updatedBooking), nil
}

// GetBookingsForMonth feeds the calendar: live bookings of the calling
// participant grouped by day, capped per day for display with a remainder
// count. Completed and cancelled rows never show up here.
func (uc *bookingUsecase) GetBookingsForMonth(ctx context.Context, request *requests.GetBookingsForMonth) (*responses.BookingMonth, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetBookingsForMonth called",
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

	monthStart := time.Date(request.Year, time.Month(request.Month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := uc.findParticipantBookings(ctx, session, monthStart, monthEnd, false)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetBookingsForMonth error finding bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.BookingMonth{
		Year:  request.Year,
		Month: request.Month,
		Days:  groupBookingsByDay(bookings, constvars.CalendarMaxBookingsPerCell),
	}

	uc.Log.Info("bookingUsecase.GetBookingsForMonth succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return response, nil
}

// GetBookingsForDay is the uncapped day-detail view. IncludeHistory pulls
// cancelled and completed rows in as well.
func (uc *bookingUsecase) GetBookingsForDay(ctx context.Context, request *requests.GetBookingsForDay) (*responses.DayBookings, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetBookingsForDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	day, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.findParticipantBookings(ctx, session, day, day.AddDate(0, 0, 1), request.IncludeHistory)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetBookingsForDay error finding bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	mapped := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		mapped = append(mapped, *toBookingResponse(&booking))
	}

	uc.Log.Info("bookingUsecase.GetBookingsForDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return &responses.DayBookings{Date: request.Date, Bookings: mapped}, nil
}

// CompleteElapsedBookings flips confirmed bookings whose end has passed to
// completed, one batch per call. Only the worker calls this; completion is
// never user-triggered.
func (uc *bookingUsecase) CompleteElapsedBookings(ctx context.Context) (int, error) {
	requestID := utils.GetRequestID(ctx)
	asOf := time.Now()
	elapsed, err := uc.BookingRepository.FindElapsedConfirmed(ctx, asOf, uc.InternalConfig.Booking.CompletionBatchSize)
	if err != nil {
		uc.Log.Error("bookingUsecase.CompleteElapsedBookings error finding elapsed bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	completed := 0
	for i := range elapsed {
		booking := elapsed[i]
		updatedBooking, err := uc.BookingRepository.UpdateStatus(ctx, booking.ID, string(models.BookingStatusCompleted))
		if err != nil || updatedBooking == nil {
			uc.Log.Error("bookingUsecase.CompleteElapsedBookings error completing booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
			continue
		}
		uc.recordStatusChange(ctx, requestID, updatedBooking, string(models.BookingStatusConfirmed), models.BookingActorSystem)
		completed++
	}

	if completed > 0 {
		uc.Log.Info("bookingUsecase.CompleteElapsedBookings completed batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingBookingCountKey, completed),
		)
	}
	return completed, nil
}

func (uc *bookingUsecase) findParticipantBookings(ctx context.Context, session *models.Session, from, to time.Time, includeHistory bool) ([]models.Booking, error) {
	if session.IsStudioOwner() {
		studioID, err := uc.resolveStudioID(ctx, session)
		if err != nil {
			return nil, err
		}
		if includeHistory {
			return uc.BookingRepository.FindByStudioAndRange(ctx, studioID, from, to)
		}
		return uc.BookingRepository.FindActiveByStudioAndRange(ctx, studioID, from, to)
	}
	if session.IsArtist() {
		artistID, err := uc.resolveArtistID(ctx, session)
		if err != nil {
			return nil, err
		}
		if includeHistory {
			return uc.BookingRepository.FindByArtistAndRange(ctx, artistID, from, to)
		}
		return uc.BookingRepository.FindActiveByArtistAndRange(ctx, artistID, from, to)
	}
	return nil, exceptions.ErrNotAuthorizedAction(nil)
}

func (uc *bookingUsecase) resolveStudioID(ctx context.Context, session *models.Session) (string, error) {
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

func (uc *bookingUsecase) resolveArtistID(ctx context.Context, session *models.Session) (string, error) {
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

func (uc *bookingUsecase) cancellingActor(ctx context.Context, session *models.Session, booking *models.Booking) (models.BookingActor, error) {
	if session.IsStudioOwner() {
		studioID, err := uc.resolveStudioID(ctx, session)
		if err != nil {
			return "", err
		}
		if booking.StudioID != studioID {
			return "", exceptions.ErrNotAuthorizedAction(nil)
		}
		return models.BookingActorOwner, nil
	}
	if session.IsArtist() {
		artistID, err := uc.resolveArtistID(ctx, session)
		if err != nil {
			return "", err
		}
		if booking.ArtistID != artistID {
			return "", exceptions.ErrNotAuthorizedAction(nil)
		}
		return models.BookingActorArtist, nil
	}
	return "", exceptions.ErrNotAuthorizedAction(nil)
}

// recordStatusChange appends the audit document and emits the change event.
// Both are best-effort: the status write already committed, so failures are
// logged and the request proceeds.
func (uc *bookingUsecase) recordStatusChange(ctx context.Context, requestID string, booking *models.Booking, fromStatus string, actor models.BookingActor) {
	event := &models.BookingEvent{
		BookingID:  booking.ID,
		StudioID:   booking.StudioID,
		ArtistID:   booking.ArtistID,
		FromStatus: fromStatus,
		ToStatus:   string(booking.Status),
		Actor:      actor,
		OccurredAt: time.Now(),
	}
	if _, err := uc.BookingEventRepository.InsertEvent(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase error appending booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}
	if err := uc.ChangeEventPublisher.PublishBookingStatusChanged(ctx, booking, fromStatus, string(actor)); err != nil {
		uc.Log.Error("bookingUsecase error publishing booking status change",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}
}

func intervalInsideAvailableWindow(windows []models.AvailabilityWindow, startClock, endClock string) bool {
	for _, window := range windows {
		if window.IsAvailable && window.Contains(startClock, endClock) {
			return true
		}
	}
	return false
}

func groupBookingsByDay(bookings []models.Booking, maxPerDay int) []responses.BookingDay {
	days := make([]responses.BookingDay, 0)
	indexByDate := make(map[string]int)

	// Input arrives ordered by start datetime, so days come out ordered by
	// first appearance.
	for i := range bookings {
		booking := bookings[i]
		date := utils.FormatCalendarDate(booking.StartDatetime)
		idx, ok := indexByDate[date]
		if !ok {
			days = append(days, responses.BookingDay{Date: date, Bookings: []responses.Booking{}})
			idx = len(days) - 1
			indexByDate[date] = idx
		}
		if len(days[idx].Bookings) < maxPerDay {
			days[idx].Bookings = append(days[idx].Bookings, *toBookingResponse(&booking))
		} else {
			days[idx].MoreBookings++
		}
	}
	return days
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
