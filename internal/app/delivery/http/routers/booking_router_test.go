package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) RequestBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) ConfirmBooking(ctx context.Context, request *requests.ConfirmBooking) (*responses.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) CancelBooking(ctx context.Context, request *requests.CancelBooking) (*responses.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingsForMonth(ctx context.Context, request *requests.GetBookingsForMonth) (*responses.BookingMonth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingMonth), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingsForDay(ctx context.Context, request *requests.GetBookingsForDay) (*responses.DayBookings, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DayBookings), args.Error(1)
}

func (m *MockBookingUsecase) CompleteElapsedBookings(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

const (
	routerTestStudioID  = "3b241101-e2bb-4255-8caf-4136c566a962"
	routerTestBookingID = "9f8c8d22-1d9c-4b9f-9c8e-2f5a5b6c7d8e"
)

func newBookingTestRouter(mockUsecase *MockBookingUsecase, limiter *middlewares.MutationRateLimiter) *chi.Mux {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		Booking: config.AppBooking{
			RequestTimeoutInSeconds: 2,
		},
	}

	bookingController := controllers.NewBookingController(mockUsecase, logger)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController, limiter)
	return router
}

func TestBookingRouter_Endpoints(t *testing.T) {
	mockUsecase := new(MockBookingUsecase)
	limiter := middlewares.NewMutationRateLimiter(100, 100, time.Minute)
	router := newBookingTestRouter(mockUsecase, limiter)

	t.Run("Request Booking With Valid Payload", func(t *testing.T) {
		mockUsecase.On("RequestBooking", mock.Anything, mock.MatchedBy(func(request *requests.CreateBooking) bool {
			return request.StudioID == routerTestStudioID && request.StartDatetime == "2025-06-10T14:00"
		})).Return(&responses.Booking{
			BookingID: routerTestBookingID,
			StudioID:  routerTestStudioID,
			Status:    "pending",
		}, nil)

		requestBody := requests.CreateBooking{
			StudioID:      routerTestStudioID,
			StartDatetime: "2025-06-10T14:00",
			EndDatetime:   "2025-06-10T16:00",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for a valid booking request")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Confirm Booking Passes URL Param Through", func(t *testing.T) {
		mockUsecase.On("ConfirmBooking", mock.Anything, mock.MatchedBy(func(request *requests.ConfirmBooking) bool {
			return request.BookingID == routerTestBookingID
		})).Return(&responses.Booking{
			BookingID: routerTestBookingID,
			Status:    "confirmed",
		}, nil)

		req := httptest.NewRequest("POST", "/"+routerTestBookingID+"/confirm", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK when the booking is confirmed")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Cancel Booking Passes URL Param Through", func(t *testing.T) {
		mockUsecase.On("CancelBooking", mock.Anything, mock.MatchedBy(func(request *requests.CancelBooking) bool {
			return request.BookingID == routerTestBookingID
		})).Return(&responses.Booking{
			BookingID: routerTestBookingID,
			Status:    "cancelled",
		}, nil)

		req := httptest.NewRequest("POST", "/"+routerTestBookingID+"/cancel", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK when the booking is cancelled")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Month View Passes Query Through", func(t *testing.T) {
		mockUsecase.On("GetBookingsForMonth", mock.Anything, mock.MatchedBy(func(request *requests.GetBookingsForMonth) bool {
			return request.Year == 2025 && request.Month == 6
		})).Return(&responses.BookingMonth{Year: 2025, Month: 6}, nil)

		req := httptest.NewRequest("GET", "/month?year=2025&month=6", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for the month view")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Day View Passes Query Through", func(t *testing.T) {
		mockUsecase.On("GetBookingsForDay", mock.Anything, mock.MatchedBy(func(request *requests.GetBookingsForDay) bool {
			return request.Date == "2025-06-10" && request.IncludeHistory
		})).Return(&responses.DayBookings{Date: "2025-06-10"}, nil)

		req := httptest.NewRequest("GET", "/day?date=2025-06-10&include_history=true", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for the day view")
		mockUsecase.AssertExpectations(t)
	})
}

func TestBookingRouter_Validation(t *testing.T) {
	mockUsecase := new(MockBookingUsecase)
	limiter := middlewares.NewMutationRateLimiter(100, 100, time.Minute)
	router := newBookingTestRouter(mockUsecase, limiter)

	t.Run("Invalid JSON Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
		mockUsecase.AssertNotCalled(t, "RequestBooking")
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		requestBody := map[string]interface{}{}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing fields")
		mockUsecase.AssertNotCalled(t, "RequestBooking")
	})

	t.Run("Malformed Booking ID In Path", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/not-a-uuid/confirm", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a malformed booking id")
		mockUsecase.AssertNotCalled(t, "ConfirmBooking")
	})

	t.Run("Non Numeric Month Query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/month?year=2025&month=june", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a non numeric month")
		mockUsecase.AssertNotCalled(t, "GetBookingsForMonth")
	})
}

func TestBookingRouter_MutationBudget(t *testing.T) {
	mockUsecase := new(MockBookingUsecase)
	mockUsecase.On("RequestBooking", mock.Anything, mock.Anything).Return(&responses.Booking{
		BookingID: routerTestBookingID,
		Status:    "pending",
	}, nil)

	limiter := middlewares.NewMutationRateLimiter(1, 1, time.Minute)
	router := newBookingTestRouter(mockUsecase, limiter)

	requestBody := requests.CreateBooking{
		StudioID:      routerTestStudioID,
		StartDatetime: "2025-06-10T14:00",
		EndDatetime:   "2025-06-10T16:00",
	}
	jsonBody, _ := json.Marshal(requestBody)

	t.Run("Budget Is Enforced On Write Routes", func(t *testing.T) {
		first := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		first.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, first)
		assert.Equal(t, http.StatusCreated, rr.Code, "first mutation should pass")

		second := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		second.Header.Set("Content-Type", "application/json")

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code, "second mutation should exceed the budget")
	})

	t.Run("Budget Does Not Cover Read Routes", func(t *testing.T) {
		mockUsecase.On("GetBookingsForDay", mock.Anything, mock.Anything).Return(&responses.DayBookings{
			Date: "2025-06-10",
		}, nil)

		req := httptest.NewRequest("GET", "/day?date=2025-06-10", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "reads should not consume the mutation budget")
	})
}
