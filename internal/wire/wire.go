package wire

import (
	"net/http"

	"reviewflow/internal/adaptor"
	"reviewflow/internal/data/repository"
	"reviewflow/internal/usecase"
	"reviewflow/pkg/middleware"
	"reviewflow/pkg/sentiment"
	"reviewflow/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, classifier sentiment.Classifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, classifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	limiter := middleware.NewSlidingWindowLimiter(config.RateLimit.PerMinute, clockwork.NewRealClock())

	// Apply global middleware; the rate limit gate runs ahead of all routes
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(limiter, logger))

	// Apply routes
	wireReview(r, handler.Review)
	wireSentiment(r, handler.Sentiment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
