package bootstrap

import (
	"github.com/geekpro798/rivetly-backend/internal/session"
	"github.com/geekpro798/rivetly-backend/internal/storage/postgres"
	cronjob "github.com/geekpro798/rivetly-backend/internal/syncgw/cron"
	syncsvc "github.com/geekpro798/rivetly-backend/internal/syncgw/service"
)

// StartStagedRetry launches the background job that replays syncs staged
// after transport failures.
func StartStagedRetry(dep RouterDeps) {
	sessions := session.NewRepo(dep.Redis)
	contexts := postgres.NewContextStore(dep.DB)
	gateway := syncsvc.NewGateway(dep.Objects, contexts, sessions)

	cronjob.NewScheduler(sessions, gateway).Start()
}
