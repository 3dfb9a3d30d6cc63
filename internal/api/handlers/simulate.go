package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"yogurt-planner/internal/api/models"
	"yogurt-planner/internal/config"
	"yogurt-planner/internal/model"
	"yogurt-planner/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	engine *simulation.Engine
}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{engine: simulation.New()}
}

// RunSimulation handles POST /api/v1/simulate. The body is optional: an
// empty body runs the default configuration.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req *models.SimulateRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		var body models.SimulateRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			if errors.Is(err, io.EOF) {
				// Empty body: run with defaults.
			} else {
				c.JSON(http.StatusBadRequest, bindingError(err))
				return
			}
		} else {
			req = &body
		}
	}

	params, err := config.Resolve(req.ToOverrides())
	if err != nil {
		var weekdayErr *model.InvalidWeekdayError
		if errors.As(err, &weekdayErr) {
			c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				http.StatusBadRequest, "Validation Error", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Internal Server Error", err.Error()))
		return
	}

	result, err := h.engine.Run(&params)
	if err != nil {
		var paramsErr *model.InvalidParamsError
		if errors.As(err, &paramsErr) {
			c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				http.StatusBadRequest, "Validation Error", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Internal Server Error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.NewSimulateResponse(uuid.NewString(), result))
}

// GetDefaults handles GET /api/v1/defaults.
func (h *SimulateHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewDefaultsResponse(model.DefaultParams()))
}

// bindingError renders a JSON binding failure, with a field→message map when
// the failure came from field validation tags.
func bindingError(err error) models.ErrorResponse {
	resp := models.NewErrorResponse(http.StatusBadRequest, "Validation Error", "validation failed for request")

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fmt.Sprintf("failed %q constraint", fe.Tag())
		}
		resp.Details = details
		return resp
	}

	resp.Message = err.Error()
	return resp
}
