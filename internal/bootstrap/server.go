package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vkarpenko/flightdesk/api"
	"github.com/vkarpenko/flightdesk/config"
	"github.com/vkarpenko/flightdesk/internal/service/flights"
)

// NewRouter assembles the gin engine: middleware, the /flights group, the
// docs route and the catch-all for unrouted paths.
func NewRouter(log zerolog.Logger, flightSvc flights.FlightUseCase) *gin.Engine {
	router := gin.New()
	router.Use(api.RequestID(), api.RequestLogger(log), api.Recovery(log))

	flightHandler := api.NewFlightHandler(flightSvc)
	flightHandler.Register(router.Group("/flights"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.Response{
			Success: false,
			Message: "route not found " + c.Request.URL.Path,
			Data:    nil,
		})
	})

	return router
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, flightSvc flights.FlightUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(log, flightSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	log.Info().Str("address", cfg.HTTP.Address).Msg("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
