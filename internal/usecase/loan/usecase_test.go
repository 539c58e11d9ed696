package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendingdash-backend/internal/domain/covenant"
	domainLoan "lendingdash-backend/internal/domain/loan"
	domainProject "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/domain/witness"
	"lendingdash-backend/internal/testutil/covenantmock"
	"lendingdash-backend/internal/testutil/loanmock"
	"lendingdash-backend/internal/testutil/projectmock"
	"lendingdash-backend/internal/testutil/uowmock"
	"lendingdash-backend/internal/testutil/witnessmock"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func projectRepo(p *domainProject.Project) *projectmock.Repo {
	return &projectmock.Repo{
		GetByProjectIDFn: func(_ context.Context, projectID string) (*domainProject.Project, error) {
			if p == nil || p.ProjectID != projectID {
				return nil, domainProject.ErrNotFound
			}
			return p, nil
		},
	}
}

func TestCreate_SyncsCovenantsInSameFlow(t *testing.T) {
	proj := &domainProject.Project{ID: 3, ProjectID: "pppppppppppppppppppppppppppppppp"}

	var createdLoan *domainLoan.Loan
	loans := &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domainLoan.Loan) error {
			l.ID = 7
			createdLoan = l
			return nil
		},
	}
	var createdCovs []covenant.Covenant
	covs := &covenantmock.Repo{
		CreateFn: func(_ context.Context, c *covenant.Covenant) error {
			createdCovs = append(createdCovs, *c)
			return nil
		},
	}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Projects: projectRepo(proj), Loans: loans, Covenants: covs}))
	dto, err := u.Create(context.Background(), CreateLoanInput{
		ProjectID:      "pppppppppppppppppppppppppppppppp",
		Phase:          "Construction",
		IOMaturityDate: date(2027, 1, 1),
		MaturityDate:   date(2028, 1, 1),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if createdLoan == nil || createdLoan.ProjectID != 3 {
		t.Fatalf("loan not created under project: %+v", createdLoan)
	}
	if len(createdLoan.LoanID) != 32 {
		t.Fatalf("public loan id not generated: %q", createdLoan.LoanID)
	}
	if len(createdCovs) != 2 {
		t.Fatalf("want 2 auto-covenants (two dates set), got %d", len(createdCovs))
	}
	for _, c := range createdCovs {
		if c.LoanID == nil || *c.LoanID != 7 || c.ProjectID != 3 {
			t.Errorf("covenant not bound to loan/project: %+v", c)
		}
	}
	if dto.Sync == nil || len(dto.Sync.Created) != 2 {
		t.Fatalf("sync result missing from DTO: %+v", dto.Sync)
	}
	if dto.ProjectID != "pppppppppppppppppppppppppppppppp" {
		t.Errorf("dto project id: %q", dto.ProjectID)
	}
}

func TestCreate_UnknownProject(t *testing.T) {
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Projects: projectRepo(nil)}))
	_, err := u.Create(context.Background(), CreateLoanInput{ProjectID: "ffffffffffffffffffffffffffffffff"})
	if !errors.Is(err, domainProject.ErrNotFound) {
		t.Fatalf("want project.ErrNotFound, got %v", err)
	}
}

func TestUpdateDates_RewritesAndResyncs(t *testing.T) {
	existing := &domainLoan.Loan{
		ID: 7, LoanID: "ln-7", ProjectID: 3,
		IOMaturityDate: date(2027, 1, 1),
	}
	var saved *domainLoan.Loan
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domainLoan.Loan, error) {
			if loanID != "ln-7" {
				return nil, domainLoan.ErrNotFound
			}
			return existing, nil
		},
		SaveFn: func(_ context.Context, l *domainLoan.Loan) error {
			saved = l
			return nil
		},
	}

	loanID := uint64(7)
	ioCov := covenant.Covenant{ID: 1, LoanID: &loanID, CovenantType: covenant.TypeIOMaturity, CovenantDate: date(2027, 1, 1)}
	var deleted []uint64
	var created []covenant.Covenant
	covs := &covenantmock.Repo{
		ListAutoByLoanIDFn: func(context.Context, uint64) ([]covenant.Covenant, error) {
			return []covenant.Covenant{ioCov}, nil
		},
		DeleteFn: func(_ context.Context, id uint64) error {
			deleted = append(deleted, id)
			return nil
		},
		CreateFn: func(_ context.Context, c *covenant.Covenant) error {
			created = append(created, *c)
			return nil
		},
	}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Loans: loans, Covenants: covs}))
	dto, err := u.UpdateDates(context.Background(), "ln-7", UpdateDatesInput{
		MaturityDate: date(2028, 6, 1), // io cleared, maturity set
	})
	if err != nil {
		t.Fatalf("UpdateDates: %v", err)
	}

	if saved == nil || saved.IOMaturityDate != nil || saved.MaturityDate == nil {
		t.Fatalf("date fields not rewritten: %+v", saved)
	}
	if len(deleted) != 1 || deleted[0] != 1 {
		t.Fatalf("cleared date must delete its covenant, got %v", deleted)
	}
	if len(created) != 1 || created[0].CovenantType != covenant.TypeLoanMaturity {
		t.Fatalf("set date must create its covenant, got %+v", created)
	}
	if dto.Sync == nil || len(dto.Sync.Created) != 1 || len(dto.Sync.Deleted) != 1 {
		t.Fatalf("sync result wrong: %+v", dto.Sync)
	}
}

func TestAddManualCovenant_RefusesAutoTypes(t *testing.T) {
	u := NewUsecase(uowmock.Passthrough(uow.Repos{}))
	for _, typ := range append(covenant.AutoTypes(), covenant.TypePermanentLoanMaturity) {
		_, err := u.AddManualCovenant(context.Background(), "ln-7", typ, nil, nil)
		if !errors.Is(err, ErrAutoTypeReserved) {
			t.Errorf("%s: want ErrAutoTypeReserved, got %v", typ, err)
		}
	}
}

func TestAddManualCovenant_BindsToLockedLoan(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{ID: 7, LoanID: loanID, ProjectID: 3}, nil
		},
	}
	var created *covenant.Covenant
	covs := &covenantmock.Repo{
		CreateFn: func(_ context.Context, c *covenant.Covenant) error {
			created = c
			return nil
		},
	}
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Loans: loans, Covenants: covs}))

	notes := "quarterly review"
	got, err := u.AddManualCovenant(context.Background(), "ln-7", covenant.TypeDSCR, date(2027, 3, 31), &notes)
	if err != nil {
		t.Fatalf("AddManualCovenant: %v", err)
	}
	if created == nil || created.LoanID == nil || *created.LoanID != 7 || created.ProjectID != 3 {
		t.Fatalf("covenant not bound: %+v", created)
	}
	if got.CovenantType != covenant.TypeDSCR || got.Notes == nil || *got.Notes != notes {
		t.Fatalf("fields lost: %+v", got)
	}
}

func TestAddGuaranteeAndEquityCommitment(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{ID: 7, LoanID: loanID, ProjectID: 3}, nil
		},
	}
	var g *witness.Guarantee
	var e *witness.EquityCommitment
	wit := &witnessmock.Repo{
		CreateGuaranteeFn:        func(_ context.Context, in *witness.Guarantee) error { g = in; return nil },
		CreateEquityCommitmentFn: func(_ context.Context, in *witness.EquityCommitment) error { e = in; return nil },
	}
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Loans: loans, Witnesses: wit}))

	if _, err := u.AddGuarantee(context.Background(), "ln-7", "Acme Guaranty Co", 250000); err != nil {
		t.Fatalf("AddGuarantee: %v", err)
	}
	if g == nil || g.LoanID != 7 || len(g.GuaranteeID) != 32 {
		t.Fatalf("guarantee not created properly: %+v", g)
	}
	if _, err := u.AddEquityCommitment(context.Background(), "ln-7", "Summit Capital", 1000000); err != nil {
		t.Fatalf("AddEquityCommitment: %v", err)
	}
	if e == nil || e.LoanID != 7 || len(e.CommitmentID) != 32 {
		t.Fatalf("commitment not created properly: %+v", e)
	}
}
