package router

import (
	"net/http"
	"time"

	_ "pet-health/docs"
	"pet-health/internal/adapters/storage/sqlstore"
	"pet-health/internal/domain/export"
	"pet-health/internal/domain/owners"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/reminders"
	"pet-health/internal/domain/stats"
	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"
	"pet-health/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Sessions emite y verifica tokens de sesión (adapters/auth/session.Manager).
type Sessions interface {
	auth.AuthVerifier
	auth.TokenIssuer
}

type Options struct {
	DB *sqlstore.DB

	Logger logger.Logger // nil = descarta

	Exchanger auth.IdentityExchanger
	Sessions  Sessions // puede ser nil: solo identificación por openId

	UpcomingDays int            // <= 0 usa 14
	Location     *time.Location // "hoy" para fechas por defecto y recordatorios
	MaxBodyBytes int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	startedAt := time.Now()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.BodyLimit(opts.MaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Status(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Status(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Repos
	petRepo := sqlstore.NewPetsRepo(opts.DB)
	recordRepo := sqlstore.NewRecordsRepo(opts.DB)

	// Services por módulo
	var issuer auth.TokenIssuer
	var verifier auth.AuthVerifier
	if opts.Sessions != nil {
		issuer, verifier = opts.Sessions, opts.Sessions
	}
	ownersSvc := owners.NewService(sqlstore.NewOwnersRepo(opts.DB), opts.Exchanger, issuer)
	petsSvc := pets.NewService(petRepo)
	recordsSvc := records.NewService(recordRepo, sqlstore.NewTxManager(opts.DB), opts.Location)
	remindersSvc := reminders.NewService(sqlstore.NewRemindersRepo(opts.DB), opts.UpcomingDays, opts.Location)
	statsSvc := stats.NewService(petsSvc, recordsSvc)
	exportSvc := export.NewService(petsSvc, recordsSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler(opts.DB, startedAt))

		owners.RegisterLoginRoute(api, ownersSvc, log)

		// Todo lo demás requiere identidad resuelta.
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Identity(verifier, ownersSvc, log))

			owners.RegisterRoutes(pr, ownersSvc, log)
			pets.RegisterRoutes(pr, petsSvc, log)
			records.RegisterRoutes(pr, recordsSvc, log)
			reminders.RegisterRoutes(pr, remindersSvc, log)
			stats.RegisterRoutes(pr, statsSvc, log)
			export.RegisterRoutes(pr, exportSvc, log)
		})
	})

	return r
}

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// healthHandler godoc
// @Summary Estado del servicio
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {string} string "storage unavailable"
// @Router /health [get]
func healthHandler(db *sqlstore.DB, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			respond.Status(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		respond.OK(w, healthResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		})
	}
}
