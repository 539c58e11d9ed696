package http

import (
	"errors"
	"net/http"

	"lendingdash-backend/internal/domain/flag"
	domainPart "lendingdash-backend/internal/domain/participation"
	domainProject "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/usecase/flags"
	"lendingdash-backend/internal/usecase/participation"

	"github.com/labstack/echo/v4"
)

type ParticipationHandler struct {
	uc    *participation.Usecase
	flags *flags.Usecase
}

func NewParticipationHandler(uc *participation.Usecase, fl *flags.Usecase) *ParticipationHandler {
	return &ParticipationHandler{uc: uc, flags: fl}
}

type createParticipationReq struct {
	ProjectID      string  `json:"project_id"      validate:"required,hex32"`
	LoanID         *string `json:"loan_id"         validate:"omitempty,hex32"`
	BankID         uint64  `json:"bank_id"         validate:"required"`
	ExposureAmount float64 `json:"exposure_amount" validate:"gte=0,dec2"`
	PaidOff        bool    `json:"paid_off"`
}

func (h *ParticipationHandler) CreateParticipation(c echo.Context) error {
	var req createParticipationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), participation.SaveInput(req))
	if err != nil {
		return participationError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateParticipationReq struct {
	ExposureAmount float64 `json:"exposure_amount" validate:"gte=0,dec2"`
	PaidOff        bool    `json:"paid_off"`
}

func (h *ParticipationHandler) UpdateParticipation(c echo.Context) error {
	var req updateParticipationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("participation_id"), req.ExposureAmount, req.PaidOff)
	if err != nil {
		return participationError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListByProject returns the project's participations with percentages
// computed fresh from current sibling data.
func (h *ParticipationHandler) ListByProject(c echo.Context) error {
	rows, err := h.uc.ListByProject(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return participationError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// SetLead makes the participation the single lead in its scope. The scope
// column comes from the `scope` query param: "project" (default) or "loan".
func (h *ParticipationHandler) SetLead(c echo.Context) error {
	var field flag.ScopeField
	switch c.QueryParam("scope") {
	case "", "project":
		field = flag.ByProject
	case "loan":
		field = flag.ByLoan
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "scope must be project or loan"})
	}
	changed, err := h.flags.SetParticipationLead(c.Request().Context(), c.Param("participation_id"), field)
	if err != nil {
		if errors.Is(err, flags.ErrBadScope) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return participationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"changed_ids": changed})
}

func participationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainPart.ErrNotFound), errors.Is(err, domainProject.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, participation.ErrInvalidExposure), errors.Is(err, participation.ErrProjectLiquidated):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, flag.ErrInvariantViolation):
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data invariant violated: " + err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
