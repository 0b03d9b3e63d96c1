package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/Sid-4215/marketbloom-backend/config"
	"github.com/Sid-4215/marketbloom-backend/internal/repository"
	"github.com/Sid-4215/marketbloom-backend/internal/service/submission"
	"github.com/Sid-4215/marketbloom-backend/pkg/database"
	"github.com/Sid-4215/marketbloom-backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSubmissionRepository,
		ProvideSubmissionNotifier,
		ProvideSubmissionService,
	),
)

func ProvideSubmissionRepository(db *database.DB) repository.SubmissionRepository {
	return repository.NewPgSubmissionRepository(db.Conn())
}

func ProvideSubmissionNotifier(client *email.Client) submission.Notifier {
	return submission.NewEmailNotifier(client)
}

func ProvideSubmissionService(repo repository.SubmissionRepository, notifier submission.Notifier, cfg *config.Config) submission.Service {
	storeTimeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	notifyTimeout := time.Duration(cfg.Email.SMTP.TimeoutSeconds) * time.Second
	return submission.New(repo, notifier, storeTimeout, notifyTimeout)
}
