package router

import (
	"database/sql"
	"net/http"

	_ "hospital-intake/docs"
	mem "hospital-intake/internal/adapters/storage/memory"
	pg "hospital-intake/internal/adapters/storage/postgres"
	"hospital-intake/internal/domain/customvalues"
	"hospital-intake/internal/domain/fields"
	"hospital-intake/internal/domain/kyc"
	"hospital-intake/internal/domain/patients"
	"hospital-intake/internal/middleware"
	"hospital-intake/internal/platform/logger"
	"hospital-intake/internal/web/views"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Si es nil no se loguea nada.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Sentry)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		patientRepo patients.Repository
		fieldRepo   fields.Repository
		valueRepo   customvalues.Repository
		kycRepo     kyc.Repository
	)

	if opts.DB != nil {
		patientRepo = pg.NewPatientsRepo(opts.DB)
		fieldRepo = pg.NewFieldsRepo(opts.DB)
		valueRepo = pg.NewCustomValuesRepo(opts.DB)
		kycRepo = pg.NewKycRepo(opts.DB)
		log.Info("storage: postgres", nil)
	} else {
		patientRepo = mem.NewPatientRepo()
		fieldRepo = mem.NewFieldRepo()
		valueRepo = mem.NewCustomValueRepo()
		kycRepo = mem.NewKycRepo()
		log.Warn("storage: in-memory (los datos se pierden al reiniciar)", nil)
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	fieldsSvc := fields.NewService(fieldRepo)
	valuesSvc := customvalues.NewService(valueRepo)
	kycSvc := kyc.NewService(kycRepo)

	view := views.MustNew()

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, fieldsSvc, valuesSvc, view, log)
	fields.RegisterRoutes(r, fieldsSvc, view, log)
	kyc.RegisterRoutes(r, kycSvc, patientsSvc, fieldsSvc, valuesSvc, view, log)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		view.RenderError(w, http.StatusNotFound, "page not found")
	})

	return r
}
