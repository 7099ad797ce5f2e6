package cronjob

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/geekpro798/rivetly-backend/internal/syncgw/domain"
)

// retrySpec runs the staged-sync retry every five minutes. Staged entries
// expire from Redis after a week, so a dead backend cannot grow the queue
// forever.
const retrySpec = "0 */5 * * * *"

// Syncer is satisfied by service.Gateway.
type Syncer interface {
	SmartSync(ctx context.Context, userID, projectName string, sc domain.SyncContext, onProgress func(stage string)) error
}

// StagedQueue is satisfied by session.Repo.
type StagedQueue interface {
	StagedUserIDs(ctx context.Context) ([]string, error)
	ListStaged(ctx context.Context, userID string) ([]domain.StagedSync, error)
	ClearStaged(ctx context.Context, userID, projectName string) error
}

// Scheduler periodically replays syncs that were staged after a transport
// failure.
type Scheduler struct {
	queue  StagedQueue
	syncer Syncer
}

func NewScheduler(queue StagedQueue, syncer Syncer) *Scheduler {
	return &Scheduler{queue: queue, syncer: syncer}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(retrySpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s.RetryStaged(ctx)
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (retrying staged syncs every 5 minutes)")
	c.Start()
}

// RetryStaged replays every staged sync once. Entries that sync are cleared;
// entries that fail again stay staged (SmartSync re-stages them itself).
// Unreadable payloads are dropped, they can never succeed.
func (s *Scheduler) RetryStaged(ctx context.Context) {
	userIDs, err := s.queue.StagedUserIDs(ctx)
	if err != nil {
		log.Printf("[retry] listing staged users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		entries, err := s.queue.ListStaged(ctx, userID)
		if err != nil {
			log.Printf("[retry] listing staged syncs failed for user=%s: %v", userID, err)
			continue
		}

		for _, entry := range entries {
			var sc domain.SyncContext
			if err := json.Unmarshal(entry.Payload, &sc); err != nil {
				log.Printf("[retry] dropping unreadable staged sync project=%s: %v", entry.ProjectName, err)
				s.clear(ctx, userID, entry.ProjectName)
				continue
			}

			if err := s.syncer.SmartSync(ctx, userID, entry.ProjectName, sc, nil); err != nil {
				log.Printf("[retry] sync still failing project=%s: %v", entry.ProjectName, err)
				continue
			}
			s.clear(ctx, userID, entry.ProjectName)
		}
	}
}

func (s *Scheduler) clear(ctx context.Context, userID, projectName string) {
	if err := s.queue.ClearStaged(ctx, userID, projectName); err != nil {
		log.Printf("[retry] clearing staged sync project=%s: %v", projectName, err)
	}
}
