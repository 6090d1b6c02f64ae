package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type BookingController struct {
	Usecase contracts.BookingUsecase
	Log     *zap.Logger
}

func NewBookingController(usecase contracts.BookingUsecase, log *zap.Logger) *BookingController {
	return &BookingController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *BookingController) RequestBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = utils.GetSessionDataFromContext(r.Context())

	response, err := c.Usecase.RequestBooking(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessBookingRequested, response)
}

func (c *BookingController) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if err := utils.ValidateUrlParamID(bookingID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "bookingID"))
		return
	}

	response, err := c.Usecase.ConfirmBooking(r.Context(), &requests.ConfirmBooking{
		BookingID:   bookingID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingConfirmed, response)
}

func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if err := utils.ValidateUrlParamID(bookingID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "bookingID"))
		return
	}

	response, err := c.Usecase.CancelBooking(r.Context(), &requests.CancelBooking{
		BookingID:   bookingID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingCancelled, response)
}

// GetMonthBookings serves the month calendar: active bookings grouped by
// day, capped per cell.
func (c *BookingController) GetMonthBookings(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidFormat(err, "year"))
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidFormat(err, "month"))
		return
	}

	response, err := c.Usecase.GetBookingsForMonth(r.Context(), &requests.GetBookingsForMonth{
		Year:        year,
		Month:       month,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingsRetrieved, response)
}

// GetDayBookings serves the uncapped day view. include_history=true adds
// cancelled and completed bookings.
func (c *BookingController) GetDayBookings(w http.ResponseWriter, r *http.Request) {
	response, err := c.Usecase.GetBookingsForDay(r.Context(), &requests.GetBookingsForDay{
		Date:           r.URL.Query().Get("date"),
		IncludeHistory: r.URL.Query().Get("include_history") == "true",
		SessionData:    utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingsRetrieved, response)
}
