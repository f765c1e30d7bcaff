package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/config"
	apphttp "github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/mailer"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := api.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, logger)

	var mail mailer.Service
	switch cfg.MailerDriver {
	case "smtp":
		mail = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		})
	default:
		mail = &mailer.Mock{}
	}

	r, err := apphttp.NewRouter(cfg, client, mail, logger)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	logger.Info("listening", "addr", cfg.ListenAddr, "backend", cfg.BackendBaseURL)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
