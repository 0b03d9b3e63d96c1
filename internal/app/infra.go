package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Sid-4215/marketbloom-backend/config"
	"github.com/Sid-4215/marketbloom-backend/pkg/database"
	"github.com/Sid-4215/marketbloom-backend/pkg/email"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDB),
	fx.Provide(ProvideEmailClient),
)

func ProvideDB(lc fx.Lifecycle, cfg *config.Config) (*database.DB, error) {
	db, err := database.NewFromCentral(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database connection")
			return db.Close()
		},
	})
	return db, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}
