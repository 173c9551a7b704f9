package router

import (
	"net/http"
	"time"

	mem "pet-care-tracker/internal/adapters/storage/memory"
	sqls "pet-care-tracker/internal/adapters/storage/sqlstore"
	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/domain/sessions"
	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/logger"

	_ "pet-care-tracker/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, usa SQL (postgres o sqlite). Si no, in-memory.
	DB *sqlx.DB

	SessionSecret string // obligatorio; config.Load genera uno efímero en modo memoria
	SessionTTL    time.Duration
	CookieSecure  bool
}

// App expone lo que main necesita además del handler (jobs).
type App struct {
	Handler  http.Handler
	Sessions *sessions.Manager
}

func New(opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		userRepo    users.Repository
		sessionRepo sessions.Repository
		recordRepo  records.Repository
	)

	if opts.DB != nil {
		userRepo = sqls.NewUsersRepo(opts.DB)
		sessionRepo = sqls.NewSessionsRepo(opts.DB)
		recordRepo = sqls.NewRecordsRepo(opts.DB)
	} else {
		userRepo = mem.NewUsersRepo()
		sessionRepo = mem.NewSessionsRepo()
		recordRepo = mem.NewRecordsRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, log)
	mgr, err := sessions.NewManager(sessionRepo, usersSvc, sessions.Options{
		Secret: opts.SessionSecret,
		TTL:    opts.SessionTTL,
	}, log)
	if err != nil {
		return nil, err
	}
	stores := records.NewStores(recordRepo, log, records.Catalog()...)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(mgr, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	sessions.RegisterRoutes(r, mgr, usersSvc, sessions.CookieOptions{Secure: opts.CookieSecure}, log)

	// Los recursos exigen sesión.
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequireAuth)
		records.RegisterRoutes(api, stores, log)
	})

	return &App{Handler: r, Sessions: mgr}, nil
}
