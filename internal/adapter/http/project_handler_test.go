package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainProject "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/testutil/participationmock"
	"lendingdash-backend/internal/testutil/projectmock"
	"lendingdash-backend/internal/testutil/uowmock"
	"lendingdash-backend/internal/usecase/cascade"
	uc "lendingdash-backend/internal/usecase/project"

	"github.com/labstack/echo/v4"
)

func newProjectHandler(r uow.Repos) *ProjectHandler {
	tx := uowmock.Passthrough(r)
	return NewProjectHandler(uc.NewUsecase(tx), cascade.NewUsecase(tx))
}

func TestCreateProject_Success(t *testing.T) {
	e := newEchoWithValidator()

	projects := &projectmock.Repo{
		CreateFn: func(_ context.Context, p *domainProject.Project) error {
			p.ID = 3
			return nil
		},
	}
	h := newProjectHandler(uow.Repos{Projects: projects})

	body := map[string]any{"name": "Solar Farm West", "stage": "Construction"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProject(c); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("want 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var dto uc.ProjectDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(dto.ProjectID) != 32 {
		t.Errorf("project id not generated: %q", dto.ProjectID)
	}
	if dto.Stage != "Construction" {
		t.Errorf("stage: got %q", dto.Stage)
	}
}

func TestCreateProject_MissingName422(t *testing.T) {
	e := newEchoWithValidator()
	h := newProjectHandler(uow.Repos{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"stage": "Construction"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProject(c); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", rec.Code)
	}

	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !containsFieldMsg(resp.Details, "Name", "required") {
		t.Errorf("details must flag name: %+v", resp.Details)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newProjectHandler(uow.Repos{Projects: &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*domainProject.Project, error) {
			return nil, domainProject.ErrNotFound
		},
	}})

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("project_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.GetProject(c); err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestChangeStage_LiquidationCascades(t *testing.T) {
	e := newEchoWithValidator()

	var savedStage string
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(_ context.Context, projectID string) (*domainProject.Project, error) {
			if projectID != projectHex {
				return nil, domainProject.ErrNotFound
			}
			return &domainProject.Project{ID: 3, ProjectID: projectHex, Stage: "Operational"}, nil
		},
		SaveFn: func(_ context.Context, p *domainProject.Project) error {
			savedStage = p.Stage
			return nil
		},
	}
	markCalls := 0
	parts := &participationmock.Repo{
		MarkAllPaidOffFn: func(_ context.Context, projectID uint64) (int64, error) {
			if projectID != 3 {
				t.Errorf("paid off wrong project: %d", projectID)
			}
			markCalls++
			return 2, nil
		},
	}
	h := newProjectHandler(uow.Repos{Projects: projects, Participations: parts})

	req := httptest.NewRequest(stdhttp.MethodPut, "/", mustJSON(map[string]any{"stage": domainProject.StageLiquidated}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("project_id")
	c.SetParamValues(projectHex)

	if err := h.ChangeStage(c); err != nil {
		t.Fatalf("ChangeStage: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if savedStage != domainProject.StageLiquidated {
		t.Errorf("stage not persisted: %q", savedStage)
	}
	if markCalls != 1 {
		t.Errorf("MarkAllPaidOff calls: got %d, want 1", markCalls)
	}
}

func TestChangeStage_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newProjectHandler(uow.Repos{Projects: &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*domainProject.Project, error) {
			return nil, domainProject.ErrNotFound
		},
	}})

	req := httptest.NewRequest(stdhttp.MethodPut, "/", mustJSON(map[string]any{"stage": "Operational"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("project_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.ChangeStage(c); err != nil {
		t.Fatalf("ChangeStage: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}
