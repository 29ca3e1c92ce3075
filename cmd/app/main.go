package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"wanderwise/cmd/fx/account_fx"
	"wanderwise/cmd/fx/catalog_fx"
	"wanderwise/cmd/fx/config_fx"
	"wanderwise/cmd/fx/controllers_fx"
	"wanderwise/cmd/fx/db_fx"
	"wanderwise/cmd/fx/events_fx"
	"wanderwise/cmd/fx/itinerary_fx"
	"wanderwise/cmd/fx/logger_fx"
	"wanderwise/cmd/fx/memcache_fx"
	"wanderwise/cmd/fx/stats_fx"
	"wanderwise/cmd/fx/trip_fx"
	"wanderwise/internal/api/controllers"
	"wanderwise/pkg/config"
	mem "wanderwise/pkg/memcache"
	"wanderwise/pkg/middleware"
	"wanderwise/pkg/obs"
	"wanderwise/pkg/utils"
)

const serviceName = "wanderwise-api"

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		events_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		stats_fx.Module,
		controllers_fx.Module,

		fx.Invoke(utils.RegisterValidators),
		fx.Invoke(SetupTracing),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SetupTracing installs the OTLP exporter when an endpoint is configured.
func SetupTracing(lc fx.Lifecycle, cfg config.App, log *zap.Logger) error {
	if cfg.OTLPEndpoint == "" {
		return nil
	}
	shutdown, err := obs.InitTracer(context.Background(), serviceName, cfg.Env, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	log.Info("tracing enabled", zap.String("endpoint", cfg.OTLPEndpoint))
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}

func StartServer(lc fx.Lifecycle, cfg config.App, engine *gin.Engine, log *zap.Logger) {
	var handler http.Handler = engine
	if cfg.OTLPEndpoint != "" {
		handler = otelhttp.NewHandler(engine, serviceName)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config   config.App
	Log      *zap.Logger
	Tokens   *utils.TokenIssuer
	Limiters mem.Store[string, *rate.Limiter]

	Health   *controllers.HealthController
	Account  *controllers.AccountController
	City     *controllers.CityController
	Activity *controllers.ActivityController
	Trip     *controllers.TripController
	Stop     *controllers.StopController
	Budget   *controllers.BudgetController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(p.Log))
	r.Use(middleware.ZapRecovery(p.Log))
	r.Use(middleware.CORSMiddleware(p.Config.AllowedOrigins()))

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)
	optional := middleware.OptionalAuthMiddleware(p.Tokens)

	api := r.Group("/api")
	api.GET("/health", p.Health.Health)
	api.Use(middleware.RateLimitMiddleware(p.Limiters, p.Config.RateLimitRequests, p.Config.RateLimitWindow))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", p.Account.Register)
	authGroup.POST("/login", p.Account.Login)

	usersGroup := api.Group("/users", auth)
	usersGroup.GET("/profile", p.Account.GetProfile)
	usersGroup.PUT("/profile", p.Account.UpdateProfile)
	usersGroup.PUT("/preferences", p.Account.UpdatePreferences)
	usersGroup.DELETE("/account", p.Account.DeleteAccount)
	usersGroup.GET("/saved-destinations", p.Account.GetSavedDestinations)
	usersGroup.POST("/saved-destinations", p.Account.SaveDestination)
	usersGroup.DELETE("/saved-destinations/:cityId", p.Account.RemoveSavedDestination)
	usersGroup.GET("/stats", p.Account.GetTravelStats)

	citiesGroup := api.Group("/cities")
	citiesGroup.GET("", optional, p.City.ListCities)
	citiesGroup.GET("/search/suggestions", p.City.Suggestions)
	citiesGroup.GET("/popular/destinations", p.City.Popular)
	citiesGroup.GET("/countries/list", p.City.Countries)
	citiesGroup.GET("/nearby", p.City.NearbyPoint)
	citiesGroup.GET("/nearby/:id", p.City.NearbyCity)
	citiesGroup.GET("/:id", optional, p.City.GetCity)

	activitiesGroup := api.Group("/activities")
	activitiesGroup.GET("", optional, p.Activity.ListActivities)
	activitiesGroup.GET("/search/suggestions", p.Activity.Suggestions)
	activitiesGroup.GET("/categories/list", p.Activity.Categories)
	activitiesGroup.GET("/city/:cityId/recommended", optional, p.Activity.Recommended)
	activitiesGroup.POST("/bulk-pricing", p.Activity.BulkPricing)
	activitiesGroup.GET("/:id", optional, p.Activity.GetActivity)

	tripsGroup := api.Group("/trips")
	tripsGroup.GET("/public/:shareToken", p.Trip.GetPublicTrip)
	tripsGroup.POST("", auth, p.Trip.CreateTrip)
	tripsGroup.GET("", auth, p.Trip.ListMyTrips)
	tripsGroup.GET("/:id", optional, p.Trip.GetTrip)
	tripsGroup.PUT("/:id", auth, p.Trip.UpdateTrip)
	tripsGroup.DELETE("/:id", auth, p.Trip.DeleteTrip)
	tripsGroup.GET("/:id/itinerary", optional, p.Trip.GetItinerary)
	tripsGroup.POST("/:id/collaborators", auth, p.Trip.AddCollaborator)
	tripsGroup.DELETE("/:id/collaborators/:accountId", auth, p.Trip.RemoveCollaborator)

	tripsGroup.GET("/:id/budget", optional, p.Budget.GetBudget)
	tripsGroup.PUT("/:id/budget/:category", auth, p.Budget.UpdateCategory)

	tripsGroup.POST("/:id/stops", auth, p.Stop.AddStop)
	tripsGroup.PUT("/:id/stops/order", auth, p.Stop.ReorderStops)
	tripsGroup.PUT("/:id/stops/:stopId", auth, p.Stop.UpdateStop)
	tripsGroup.DELETE("/:id/stops/:stopId", auth, p.Stop.RemoveStop)
	tripsGroup.PUT("/:id/stops/:stopId/activities", auth, p.Stop.ReplaceActivities)
	tripsGroup.POST("/:id/stops/:stopId/activities", auth, p.Stop.AddActivity)
	tripsGroup.DELETE("/:id/stops/:stopId/activities/:tripActivityId", auth, p.Stop.RemoveActivity)
}
