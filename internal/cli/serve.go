package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"babynames/internal/api"
	"babynames/internal/engine"
	"babynames/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func newServeCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the name queries as a JSON API.",
		Long: `Serve the name queries as a JSON API.

The server starts immediately and answers 503 until the data is loaded in
the background: the processed data file if it can be opened, the
spreadsheet otherwise.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Bind, "bind", cfg.Bind, "Address to listen on.")
	cmd.Flags().Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per client.")
	return cmd
}

func runServer(ctx context.Context, cfg *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cfg.Verbose {
		log.SetLevel(log.INFO)
	}

	// The API is live at once but answers 503 until SetSession.
	e, h := newServer(cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t0 := time.Now()
		log.Infof("background: loading data...")
		s, err := loadSession(cfg)
		if err != nil {
			return err
		}
		h.SetSession(s)
		log.Infof("background: load complete in %v. API is fully ready.", time.Since(t0))
		return nil
	})

	g.Go(func() error {
		log.Infof("server ready on %s (data loading in background...)", cfg.Bind)
		if err := e.Start(cfg.Bind); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(sctx)
	})

	return g.Wait()
}

// newServer builds the echo instance with its middleware and routes. Echo
// logs through its own gommon logger, which is pointed at the output, level
// and header the command tree configured.
func newServer(cfg *Config) (*echo.Echo, *api.Handler) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(log.Output())
	e.Logger.SetLevel(log.Level())
	e.Logger.SetHeader(logHeader)
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: log.Output()}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))

	h := api.NewHandler(nil)
	h.RegisterRoutes(e)
	return e, h
}

// loadSession prefers the processed data file and falls back to the
// spreadsheet.
func loadSession(cfg *Config) (*engine.Session, error) {
	s, err := storage.Load(cfg.DB)
	if err == nil {
		return s, nil
	}
	log.Infof("processed data unavailable (%v), reading %s", err, cfg.Data)
	return engine.Load(cfg.Data, cfg.loadOptions())
}
