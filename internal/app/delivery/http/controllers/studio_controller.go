package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type StudioController struct {
	Usecase contracts.StudioUsecase
	Log     *zap.Logger
}

func NewStudioController(usecase contracts.StudioUsecase, log *zap.Logger) *StudioController {
	return &StudioController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *StudioController) GetStudioByID(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioID")
	if err := utils.ValidateUrlParamID(studioID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(err, "studioID"))
		return
	}

	response, err := c.Usecase.GetStudioByID(r.Context(), studioID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessStudioRetrieved, response)
}
