package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) FindByStudioAndDateRange(ctx context.Context, studioID, fromDate, toDate string) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, studioID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityRepository) FindByStudioAndDate(ctx context.Context, studioID, date string) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, studioID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityRepository) FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error) {
	args := m.Called(ctx, windowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityRepository) CountOverlapping(ctx context.Context, studioID, date, startTime, endTime string) (int, error) {
	args := m.Called(ctx, studioID, date, startTime, endTime)
	return args.Int(0), args.Error(1)
}

func (m *MockAvailabilityRepository) CreateWindow(ctx context.Context, window *models.AvailabilityWindow) (*models.AvailabilityWindow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteWindow(ctx context.Context, windowID string) error {
	args := m.Called(ctx, windowID)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) FindAvailableDates(ctx context.Context, studioID, fromDate, toDate string) ([]string, error) {
	args := m.Called(ctx, studioID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByStudioAndInterval(ctx context.Context, studioID string, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, studioID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, studioID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, artistID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, studioID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, artistID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindElapsedConfirmed(ctx context.Context, asOf time.Time, limit int) ([]models.Booking, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockStudioRepository struct {
	mock.Mock
}

func (m *MockStudioRepository) FindByID(ctx context.Context, studioID string) (*models.Studio, error) {
	args := m.Called(ctx, studioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Studio), args.Error(1)
}

func (m *MockStudioRepository) FindByOwnerUserID(ctx context.Context, ownerUserID string) (*models.Studio, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Studio), args.Error(1)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) FindByID(ctx context.Context, artistID string) (*models.Artist, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindByUserID(ctx context.Context, userID string) (*models.Artist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

type fakeSessionService struct{}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", exceptions.ErrSessionNotFound(nil)
}

const (
	testStudioID = "11111111-1111-1111-1111-111111111111"
	testArtistID = "22222222-2222-2222-2222-222222222222"
)

type calendarTestEnv struct {
	windowRepo  *MockAvailabilityRepository
	bookingRepo *MockBookingRepository
	studioRepo  *MockStudioRepository
	artistRepo  *MockArtistRepository
	uc          *calendarUsecase
}

func newCalendarTestEnv() *calendarTestEnv {
	env := &calendarTestEnv{
		windowRepo:  new(MockAvailabilityRepository),
		bookingRepo: new(MockBookingRepository),
		studioRepo:  new(MockStudioRepository),
		artistRepo:  new(MockArtistRepository),
	}
	env.uc = &calendarUsecase{
		AvailabilityRepository: env.windowRepo,
		BookingRepository:      env.bookingRepo,
		StudioRepository:       env.studioRepo,
		ArtistRepository:       env.artistRepo,
		SessionService:         &fakeSessionService{},
		Log:                    zap.NewNop(),
	}
	return env
}

func sessionDataOf(t *testing.T, session *models.Session) string {
	t.Helper()
	raw, err := json.Marshal(session)
	assert.NoError(t, err)
	return string(raw)
}

func ownerSession(t *testing.T) string {
	return sessionDataOf(t, &models.Session{
		SessionID: "sess-owner",
		UserID:    "user-owner",
		Role:      constvars.RoleStudioOwner,
		StudioID:  testStudioID,
	})
}

func artistSession(t *testing.T) string {
	return sessionDataOf(t, &models.Session{
		SessionID: "sess-artist",
		UserID:    "user-artist",
		Role:      constvars.RoleArtist,
		ArtistID:  testArtistID,
	})
}

func confirmedBooking(t *testing.T, id, start, end string) models.Booking {
	t.Helper()
	startAt, err := utils.ParseLocalDatetime(start)
	assert.NoError(t, err)
	endAt, err := utils.ParseLocalDatetime(end)
	assert.NoError(t, err)
	return models.Booking{
		ID:            id,
		StudioID:      testStudioID,
		ArtistID:      testArtistID,
		StartDatetime: startAt,
		EndDatetime:   endAt,
		Status:        models.BookingStatusConfirmed,
	}
}

func TestCalendarUsecase_GetMonthGrid(t *testing.T) {
	ctx := context.Background()
	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	t.Run("Owner Sees Availability And Capped Bookings", func(t *testing.T) {
		env := newCalendarTestEnv()

		env.windowRepo.On("FindAvailableDates", mock.Anything, testStudioID, "2025-06-01", "2025-06-30").
			Return([]string{"2025-06-10", "2025-06-12"}, nil)
		env.bookingRepo.On("FindActiveByStudioAndRange", mock.Anything, testStudioID, monthStart, nextMonthStart).
			Return([]models.Booking{
				confirmedBooking(t, "bk-1", "2025-06-10T09:00", "2025-06-10T10:00"),
				confirmedBooking(t, "bk-2", "2025-06-10T10:00", "2025-06-10T11:00"),
				confirmedBooking(t, "bk-3", "2025-06-10T11:00", "2025-06-10T12:00"),
				confirmedBooking(t, "bk-4", "2025-06-12T14:00", "2025-06-12T15:00"),
			}, nil)

		response, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       6,
			SessionData: ownerSession(t),
		})

		assert.NoError(t, err)
		assert.Equal(t, 2025, response.Year)
		assert.Equal(t, 6, response.Month)
		assert.Len(t, response.Cells, gridCells)

		june10 := response.Cells[9]
		assert.True(t, june10.HasAvailability)
		assert.Len(t, june10.Bookings, 2, "cell should cap inline bookings")
		assert.Equal(t, 1, june10.MoreBookings, "third booking should collapse into the remainder")
		assert.Equal(t, "bk-1", june10.Bookings[0].BookingID)

		june12 := response.Cells[11]
		assert.True(t, june12.HasAvailability)
		assert.Len(t, june12.Bookings, 1)
		assert.Zero(t, june12.MoreBookings)

		june9 := response.Cells[8]
		assert.False(t, june9.HasAvailability)
		assert.Empty(t, june9.Bookings)

		env.windowRepo.AssertExpectations(t)
		env.bookingRepo.AssertExpectations(t)
	})

	t.Run("Owner Studio Resolved From User When Session Lacks It", func(t *testing.T) {
		env := newCalendarTestEnv()

		env.studioRepo.On("FindByOwnerUserID", mock.Anything, "user-owner").
			Return(&models.Studio{ID: testStudioID}, nil)
		env.windowRepo.On("FindAvailableDates", mock.Anything, testStudioID, "2025-06-01", "2025-06-30").
			Return([]string{}, nil)
		env.bookingRepo.On("FindActiveByStudioAndRange", mock.Anything, testStudioID, monthStart, nextMonthStart).
			Return([]models.Booking{}, nil)

		response, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:  2025,
			Month: 6,
			SessionData: sessionDataOf(t, &models.Session{
				SessionID: "sess-owner",
				UserID:    "user-owner",
				Role:      constvars.RoleStudioOwner,
			}),
		})

		assert.NoError(t, err)
		assert.Len(t, response.Cells, gridCells)
		env.studioRepo.AssertExpectations(t)
	})

	t.Run("Artist Browsing A Studio Gets Its Availability Overlay", func(t *testing.T) {
		env := newCalendarTestEnv()

		env.studioRepo.On("FindByID", mock.Anything, testStudioID).
			Return(&models.Studio{ID: testStudioID}, nil)
		env.windowRepo.On("FindAvailableDates", mock.Anything, testStudioID, "2025-06-01", "2025-06-30").
			Return([]string{"2025-06-05"}, nil)
		env.bookingRepo.On("FindActiveByArtistAndRange", mock.Anything, testArtistID, monthStart, nextMonthStart).
			Return([]models.Booking{
				confirmedBooking(t, "bk-own", "2025-06-10T09:00", "2025-06-10T10:00"),
			}, nil)

		response, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       6,
			StudioID:    testStudioID,
			SessionData: artistSession(t),
		})

		assert.NoError(t, err)
		assert.True(t, response.Cells[4].HasAvailability, "browsed studio availability should land on June 5")
		assert.Len(t, response.Cells[9].Bookings, 1, "artist's own booking should land on June 10")
		env.bookingRepo.AssertNotCalled(t, "FindActiveByStudioAndRange")
	})

	t.Run("Artist Without Studio Gets Bookings Only", func(t *testing.T) {
		env := newCalendarTestEnv()

		env.bookingRepo.On("FindActiveByArtistAndRange", mock.Anything, testArtistID, monthStart, nextMonthStart).
			Return([]models.Booking{}, nil)

		response, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       6,
			SessionData: artistSession(t),
		})

		assert.NoError(t, err)
		assert.Len(t, response.Cells, gridCells)
		for _, cell := range response.Cells {
			assert.False(t, cell.HasAvailability, "no studio in scope, no availability overlay")
		}
		env.windowRepo.AssertNotCalled(t, "FindAvailableDates")
		env.studioRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("Artist Browsing Unknown Studio Fails", func(t *testing.T) {
		env := newCalendarTestEnv()

		env.studioRepo.On("FindByID", mock.Anything, "ghost-studio").Return(nil, nil)

		_, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       6,
			StudioID:    "ghost-studio",
			SessionData: artistSession(t),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.ErrStudioNotFound(nil).StatusCode, customErr.StatusCode)
		env.bookingRepo.AssertNotCalled(t, "FindActiveByArtistAndRange")
	})

	t.Run("Month Outside Calendar Range Fails", func(t *testing.T) {
		env := newCalendarTestEnv()

		_, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       13,
			SessionData: ownerSession(t),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.ErrInvalidFormat(nil, "month").StatusCode, customErr.StatusCode)
	})

	t.Run("Session Without Participant Role Fails", func(t *testing.T) {
		env := newCalendarTestEnv()

		_, err := env.uc.GetMonthGrid(ctx, &requests.GetMonthGrid{
			Year:        2025,
			Month:       6,
			SessionData: sessionDataOf(t, &models.Session{SessionID: "sess-x", UserID: "user-x", Role: "support"}),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.ErrNotAuthorizedAction(nil).StatusCode, customErr.StatusCode)
	})
}
