package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arenaduna/booking-backend/internal/api"
	"github.com/arenaduna/booking-backend/internal/auth"
	"github.com/arenaduna/booking-backend/internal/booking"
	"github.com/arenaduna/booking-backend/internal/calendar"
	"github.com/arenaduna/booking-backend/internal/notify"
	"github.com/arenaduna/booking-backend/internal/schedule"
	"github.com/arenaduna/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	EventSource   calendar.EventSource
	VenueLocation *time.Location
	WeekendPolicy schedule.WeekendPolicy
	UnknownPolicy schedule.UnknownPolicy
	Rules         []schedule.RuleConfig
	UsersFile     string
	JWTSecret     string
	JWTTTL        time.Duration
	BcryptCost    int
	Logger        *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewFileRepository(cfg.UsersFile)
	userService := user.NewService(userRepo, passwordHasher)

	// Scheduling Core
	classifier := schedule.NewClassifier(cfg.Rules)
	engine := schedule.NewEngine(classifier, cfg.VenueLocation, cfg.WeekendPolicy, cfg.UnknownPolicy)

	// Booking Module
	authorizer := booking.NewDescriptionAuthorizer()
	notifier := notify.NewLogNotifier(cfg.Logger)
	bookingService := booking.NewService(cfg.EventSource, engine, authorizer, notifier, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		BookingService: bookingService,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
