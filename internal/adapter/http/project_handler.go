package http

import (
	"errors"
	"net/http"

	domainProject "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/usecase/cascade"
	"lendingdash-backend/internal/usecase/project"

	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	uc      *project.Usecase
	cascade *cascade.Usecase
}

func NewProjectHandler(uc *project.Usecase, cas *cascade.Usecase) *ProjectHandler {
	return &ProjectHandler{uc: uc, cascade: cas}
}

type createProjectReq struct {
	Name  string `json:"name"  validate:"required"`
	Stage string `json:"stage" validate:"required"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), project.CreateProjectInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

type changeStageReq struct {
	Stage string `json:"stage" validate:"required"`
}

// ChangeStage persists the new stage; entering Liquidated additionally pays
// off every participation under the project.
func (h *ProjectHandler) ChangeStage(c echo.Context) error {
	var req changeStageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.cascade.OnProjectStageChanged(c.Request().Context(), c.Param("project_id"), req.Stage)
	if err != nil {
		if errors.Is(err, domainProject.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"stage": req.Stage})
}
