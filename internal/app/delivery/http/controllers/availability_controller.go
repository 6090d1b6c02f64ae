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

type AvailabilityController struct {
	Usecase contracts.AvailabilityUsecase
	Log     *zap.Logger
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecase, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetDateAvailability returns the published windows of one studio on one
// date, with effective prices resolved.
func (c *AvailabilityController) GetDateAvailability(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	response, err := c.Usecase.GetAvailabilityForDate(r.Context(), &requests.GetAvailabilityForDate{
		StudioID: studioID,
		Date:     r.URL.Query().Get("date"),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessAvailabilityRetrieved, response)
}

func (c *AvailabilityController) GetEditorState(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	response, err := c.Usecase.GetEditorState(r.Context(), &requests.GetEditorState{
		StudioID:    studioID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessAvailabilityRetrieved, response)
}

func (c *AvailabilityController) SelectEditorDate(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	request := new(requests.SelectEditorDate)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.StudioID = studioID
	request.SessionData = utils.GetSessionDataFromContext(r.Context())

	response, err := c.Usecase.SelectEditorDate(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessDateSelected, response)
}

func (c *AvailabilityController) StageWindow(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	request := new(requests.StageAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.StudioID = studioID
	request.SessionData = utils.GetSessionDataFromContext(r.Context())

	response, err := c.Usecase.StageWindow(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessWindowStaged, response)
}

func (c *AvailabilityController) CommitWindow(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	response, err := c.Usecase.CommitWindow(r.Context(), &requests.CommitAvailability{
		StudioID:    studioID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessWindowCommitted, response)
}

func (c *AvailabilityController) RemoveStagedWindow(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}
	stagedIndex, err := strconv.Atoi(chi.URLParam(r, "stagedIndex"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidFormat(err, "staged_index"))
		return
	}

	response, err := c.Usecase.RemoveStagedWindow(r.Context(), &requests.RemoveStagedWindow{
		StagedIndex: stagedIndex,
		StudioID:    studioID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessWindowRemoved, response)
}

func (c *AvailabilityController) RemoveWindow(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}
	windowID := chi.URLParam(r, "windowID")
	if err := utils.ValidateUrlParamID(windowID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "windowID"))
		return
	}

	err := c.Usecase.RemoveWindow(r.Context(), &requests.RemoveAvailability{
		StudioID:    studioID,
		WindowID:    windowID,
		SessionData: utils.GetSessionDataFromContext(r.Context()),
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessWindowRemoved, nil)
}
