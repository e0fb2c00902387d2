package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http"
	"github.com/harizal/portfolio/api/http/handlers"
	"github.com/harizal/portfolio/pkg/auth"
	"github.com/harizal/portfolio/pkg/config"
	"github.com/harizal/portfolio/pkg/contact"
	"github.com/harizal/portfolio/pkg/health"
	healthpg "github.com/harizal/portfolio/pkg/health/checkers"
	"github.com/harizal/portfolio/pkg/mailer"
	"github.com/harizal/portfolio/pkg/profile"
	"github.com/harizal/portfolio/pkg/repository/memory"
	pgrepo "github.com/harizal/portfolio/pkg/repository/postgres"
	"github.com/harizal/portfolio/pkg/security/jwt"
	"github.com/harizal/portfolio/pkg/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

type stores struct {
	profiles    profile.Repository
	contacts    contact.Repository
	credentials auth.CredentialRepository
	checkers    []health.Checker
	close       func()
}

func openStores(ctx context.Context) (stores, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return stores{
			profiles:    memory.NewProfileRepository(),
			contacts:    memory.NewContactRepository(),
			credentials: memory.NewCredentialRepository(),
			close:       func() {},
		}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
	if err != nil {
		return stores{}, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return stores{}, err
	}
	return stores{
		profiles:    pgrepo.NewProfileRepository(pool),
		contacts:    pgrepo.NewContactRepository(pool),
		credentials: pgrepo.NewCredentialRepository(pool),
		checkers:    []health.Checker{healthpg.NewPostgresChecker(pool)},
		close:       pool.Close,
	}, nil
}

func newMailSender() mailer.Sender {
	if cfg.Mail.Host == "" {
		log.Warn("EMAIL_HOST is not set, outgoing mail is only logged")
		return mailer.NewLogSender(log)
	}
	return mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.User,
		Password: cfg.Mail.Pass,
		Secure:   cfg.Mail.Secure,
		From:     cfg.Mail.From,
		Timeout:  cfg.Mail.Timeout(),
	})
}

func serve(parent context.Context) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer st.close()

	owner := cfg.AdminNotifyEmail
	if owner == "" {
		owner = cfg.Mail.User
	}
	notifier := mailer.NewNotifier(newMailSender(), owner)

	otpMode := cfg.LoginMode == config.LoginOTP
	var codes auth.CodeSender
	if otpMode {
		codes = notifier
	}

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	authUC := auth.NewAuthService(st.credentials, tokens, codes)
	if cfg.AdminIdentifier != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.AdminIdentifier, cfg.AdminSecret); err != nil {
			return fmt.Errorf("seed admin credential: %w", err)
		}
	}

	profileUC := profile.NewService(st.profiles)
	contactUC := contact.NewService(st.contacts, notifier, cfg.Mail.Timeout(), log)
	readiness := health.NewService(st.checkers...)

	app := http.NewApp(log)
	http.Register(app, http.Handlers{
		Auth:    handlers.NewAuthHandler(authUC, otpMode, log),
		Profile: handlers.NewProfileHandler(profileUC, log),
		Editor:  handlers.NewEditorHandler(profileUC, log),
		Contact: handlers.NewContactHandler(contactUC, log),
		Health:  handlers.NewHealthHandler(readiness, log),
	}, jwt.NewAuthMiddleware(authUC), http.Limits{
		LoginMax:     cfg.LoginRateLimit,
		LoginWindow:  cfg.LoginRateWindow(),
		PublicMax:    cfg.PublicRateLimit,
		PublicWindow: cfg.PublicRateWindow(),
	}, cfg.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening",
			zap.String("port", cfg.Port),
			zap.String("storage", cfg.StorageDriver),
			zap.String("login_mode", cfg.LoginMode),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
