package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/memory"
	appservice "taskboard/internal/app/service"
	"taskboard/internal/app/session"
	"taskboard/internal/config"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/translator"
)

const (
	shutdownTimeout = 5 * time.Second
	demoUser        = "demo"
	demoPassword    = "demo"
)

type remote interface {
	ports.TaskService
	ports.AccountService
	ports.HealthChecker
}

func (a *app) newServeCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task board API",
		Long: `Serve the local task board API backed by the remote task service.

Examples:
  taskboard serve --port 8080
  taskboard serve --demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.newServer(cmd.Context(), demo)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, srv)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "use an in-memory task service seeded with a demo/demo account")
	cmd.Flags().String("port", "", "port to listen on")
	bindFlag(a.v, config.KeyAppPort, cmd.Flags().Lookup("port"))
	return cmd
}

func (a *app) newServer(ctx context.Context, demo bool) (*http.Server, error) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  a.cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	var backend remote = a.restClient()
	if demo {
		demoBackend, err := newDemoBackend(ctx)
		if err != nil {
			return nil, err
		}
		backend = demoBackend
	}

	taskStore, err := a.taskStore()
	if err != nil {
		return nil, err
	}
	sess := session.New()
	synchronizer := appservice.NewTaskSynchronizer(backend, taskStore, sess)
	authenticator := appservice.NewAuthenticator(backend, sess)

	router, err := httpadapter.NewRouter(httpadapter.Handlers{
		Health: handlers.NewHealthHandler(backend, a.cfg.AppName, a.cfg.AppVersion),
		Auth:   handlers.NewAuthHandler(authenticator, synchronizer),
		Tasks:  handlers.NewTaskHandler(synchronizer),
	}, authenticator, a.cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("configure router: %w", err)
	}

	return &http.Server{
		Addr:              ":" + a.cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func newDemoBackend(ctx context.Context) (*memory.Service, error) {
	backend := memory.NewService()
	_, _, err := backend.Register(ctx, domain.Registration{
		UserName:        demoUser,
		Email:           "demo@example.com",
		Password:        demoPassword,
		PasswordConfirm: demoPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("seed demo account: %w", err)
	}
	zap.L().Info("demo mode: in-memory task service", zap.String("username", demoUser))
	return backend, nil
}

// runServer serves until ctx is done, then drains in-flight requests.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
