package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendingdash-backend/internal/adapter/http"
	"lendingdash-backend/internal/adapter/middleware"
	"lendingdash-backend/internal/adapter/repository/mysql"
	"lendingdash-backend/internal/config"
	"lendingdash-backend/internal/infrastructure/cache"
	"lendingdash-backend/internal/infrastructure/db"
	"lendingdash-backend/internal/usecase/cascade"
	"lendingdash-backend/internal/usecase/flags"
	"lendingdash-backend/internal/usecase/loan"
	"lendingdash-backend/internal/usecase/loandelete"
	"lendingdash-backend/internal/usecase/participation"
	"lendingdash-backend/internal/usecase/project"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	tx := mysql.NewGormUoW(gdb)

	projectUC := project.NewUsecase(tx)
	loanUC := loan.NewUsecase(tx)
	participationUC := participation.NewUsecase(tx)
	flagsUC := flags.NewUsecase(tx)
	cascadeUC := cascade.NewUsecase(tx)
	deleteUC := loandelete.NewUsecase(tx)

	h := httpadp.NewHandler()
	projectH := httpadp.NewProjectHandler(projectUC, cascadeUC)
	loanH := httpadp.NewLoanHandler(loanUC, flagsUC, deleteUC)
	participationH := httpadp.NewParticipationHandler(participationUC, flagsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/projects", projectH.CreateProject)
	e.GET("/projects/:project_id", projectH.GetProject)
	e.PUT("/projects/:project_id/stage", projectH.ChangeStage)
	e.POST("/projects/:project_id/loans", loanH.CreateLoan)
	e.GET("/projects/:project_id/participations", participationH.ListByProject)

	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.PUT("/loans/:loan_id/dates", loanH.UpdateDates)
	e.POST("/loans/:loan_id/activate", loanH.ActivateLoan)
	e.DELETE("/loans/:loan_id", loanH.DeleteLoan)
	e.POST("/loans/:loan_id/guarantees", loanH.AddGuarantee)
	e.POST("/loans/:loan_id/equity-commitments", loanH.AddEquityCommitment)
	e.POST("/loans/:loan_id/covenants", loanH.AddManualCovenant)

	e.POST("/participations", participationH.CreateParticipation)
	e.PUT("/participations/:participation_id", participationH.UpdateParticipation)
	e.POST("/participations/:participation_id/lead", participationH.SetLead)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
