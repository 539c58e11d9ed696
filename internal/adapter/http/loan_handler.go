package http

import (
	"errors"
	"net/http"

	"lendingdash-backend/internal/domain/covenant"
	"lendingdash-backend/internal/domain/flag"
	domainLoan "lendingdash-backend/internal/domain/loan"
	domainProject "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/usecase/flags"
	"lendingdash-backend/internal/usecase/loan"
	"lendingdash-backend/internal/usecase/loandelete"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	uc     *loan.Usecase
	flags  *flags.Usecase
	delete *loandelete.Usecase
}

func NewLoanHandler(uc *loan.Usecase, fl *flags.Usecase, del *loandelete.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, flags: fl, delete: del}
}

type createLoanReq struct {
	Phase string `json:"phase" validate:"required"`

	IOMaturityDate    *string `json:"io_maturity_date"    validate:"omitempty,datetime=2006-01-02"`
	MaturityDate      *string `json:"maturity_date"       validate:"omitempty,datetime=2006-01-02"`
	MiniPermMaturity  *string `json:"mini_perm_maturity"  validate:"omitempty,datetime=2006-01-02"`
	PermPhaseMaturity *string `json:"perm_phase_maturity" validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	projectID := c.Param("project_id")
	if !reHex32.MatchString(projectID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project_id path param"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := loan.CreateLoanInput{ProjectID: projectID, Phase: req.Phase}
	var err error
	if in.IOMaturityDate, err = parseDatePtr(req.IOMaturityDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid io_maturity_date"})
	}
	if in.MaturityDate, err = parseDatePtr(req.MaturityDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid maturity_date"})
	}
	if in.MiniPermMaturity, err = parseDatePtr(req.MiniPermMaturity); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mini_perm_maturity"})
	}
	if in.PermPhaseMaturity, err = parseDatePtr(req.PermPhaseMaturity); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid perm_phase_maturity"})
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateLoanDatesReq struct {
	IOMaturityDate    *string `json:"io_maturity_date"    validate:"omitempty,datetime=2006-01-02"`
	MaturityDate      *string `json:"maturity_date"       validate:"omitempty,datetime=2006-01-02"`
	MiniPermMaturity  *string `json:"mini_perm_maturity"  validate:"omitempty,datetime=2006-01-02"`
	PermPhaseMaturity *string `json:"perm_phase_maturity" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateDates rewrites the four maturity fields; the mirrored covenants are
// resynced in the same transaction.
func (h *LoanHandler) UpdateDates(c echo.Context) error {
	var req updateLoanDatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var in loan.UpdateDatesInput
	var err error
	if in.IOMaturityDate, err = parseDatePtr(req.IOMaturityDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid io_maturity_date"})
	}
	if in.MaturityDate, err = parseDatePtr(req.MaturityDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid maturity_date"})
	}
	if in.MiniPermMaturity, err = parseDatePtr(req.MiniPermMaturity); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mini_perm_maturity"})
	}
	if in.PermPhaseMaturity, err = parseDatePtr(req.PermPhaseMaturity); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid perm_phase_maturity"})
	}

	dto, err := h.uc.UpdateDates(c.Request().Context(), c.Param("loan_id"), in)
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ActivateLoan makes the loan the single active one in its project.
func (h *LoanHandler) ActivateLoan(c echo.Context) error {
	changed, err := h.flags.SetLoanActive(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"changed_ids": changed})
}

// DeleteLoan refuses with 409 when user-owned associations still reference
// the loan; otherwise the whole cascade commits.
func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	err := h.delete.DeleteLoan(c.Request().Context(), c.Param("loan_id"))
	if err == nil {
		return c.NoContent(http.StatusNoContent)
	}
	var assoc *loandelete.AssociationsError
	if errors.As(err, &assoc) {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:  assoc.Error(),
			Reason: "LOAN_HAS_ASSOCIATIONS",
		})
	}
	return loanError(c, err)
}

type addGuaranteeReq struct {
	GuarantorName string  `json:"guarantor_name" validate:"required"`
	Amount        float64 `json:"amount"         validate:"gte=0,dec2"`
}

func (h *LoanHandler) AddGuarantee(c echo.Context) error {
	var req addGuaranteeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	g, err := h.uc.AddGuarantee(c.Request().Context(), c.Param("loan_id"), req.GuarantorName, req.Amount)
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

type addEquityCommitmentReq struct {
	InvestorName string  `json:"investor_name" validate:"required"`
	Amount       float64 `json:"amount"        validate:"gte=0,dec2"`
}

func (h *LoanHandler) AddEquityCommitment(c echo.Context) error {
	var req addEquityCommitmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	e, err := h.uc.AddEquityCommitment(c.Request().Context(), c.Param("loan_id"), req.InvestorName, req.Amount)
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

type addManualCovenantReq struct {
	CovenantType string  `json:"covenant_type" validate:"required"`
	CovenantDate *string `json:"covenant_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes"`
}

func (h *LoanHandler) AddManualCovenant(c echo.Context) error {
	var req addManualCovenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, err := parseDatePtr(req.CovenantDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid covenant_date"})
	}
	cov, err := h.uc.AddManualCovenant(c.Request().Context(), c.Param("loan_id"),
		covenant.Type(req.CovenantType), date, req.Notes)
	if err != nil {
		if errors.Is(err, loan.ErrAutoTypeReserved) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return loanError(c, err)
	}
	return c.JSON(http.StatusCreated, cov)
}

// loanError maps domain errors to HTTP codes shared by the loan routes.
func loanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainLoan.ErrNotFound), errors.Is(err, domainProject.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, flag.ErrInvariantViolation), errors.Is(err, covenant.ErrInvariantViolation):
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data invariant violated: " + err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
