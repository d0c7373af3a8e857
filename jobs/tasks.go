package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCatalogIntegrityScan sweeps the catalog for promotion mismatches
	// and sales whose stored total drifted from their line items.
	TaskCatalogIntegrityScan = "catalog:integrity_scan"
)

// CatalogIntegrityScanPayload carries scheduling metadata.
type CatalogIntegrityScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewCatalogIntegrityScanTask constructs an Asynq task for the catalog scan.
func NewCatalogIntegrityScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(CatalogIntegrityScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogIntegrityScan, body, asynq.Queue(QueueDefault)), nil
}
