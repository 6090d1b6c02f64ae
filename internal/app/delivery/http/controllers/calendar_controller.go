package controllers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type CalendarController struct {
	Usecase contracts.CalendarUsecase
	Log     *zap.Logger
}

func NewCalendarController(usecase contracts.CalendarUsecase, log *zap.Logger) *CalendarController {
	return &CalendarController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetMonthGrid renders the 42-cell month view for the calling participant.
// Artists may pass studio_id to overlay that studio's availability.
func (c *CalendarController) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
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

	response, err := c.Usecase.GetMonthGrid(r.Context(), &requests.GetMonthGrid{
		Year:        year,
		Month:       month,
		StudioID:    r.URL.Query().Get("studio_id"),
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessMonthGridRetrieved, response)
}
