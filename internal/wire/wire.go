package wire

import (
	"net/http"

	"ecommerce-store/internal/adaptor"
	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/mail"
	"ecommerce-store/internal/otp"
	"ecommerce-store/internal/storage"
	"ecommerce-store/internal/usecase"
	"ecommerce-store/pkg/middleware"
	"ecommerce-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	uploader, err := storage.NewUploader(config.Upload)
	if err != nil {
		return nil, err
	}

	challenges := otp.NewMemoryStore()
	mailer := mail.NewSMTPMailer(config.Email)

	service := usecase.NewService(repo, challenges, mailer, uploader, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireProduct(r, handler.Product)
	wireUser(r, handler.User)

	// Uploaded images are served statically on the local backend; the s3
	// backend hands out absolute URLs instead.
	if config.Upload.Backend == "local" || config.Upload.Backend == "" {
		fs := http.StripPrefix(config.Upload.URLPrefix, http.FileServer(http.Dir(config.Upload.Dir)))
		r.Get(config.Upload.URLPrefix+"*", fs.ServeHTTP)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
