// Package sessions provides the pluggable state backends behind the
// session registry. The default backend is a process-local map; a Redis
// backend is available for deployments that share sessions across
// processes.
package sessions

import (
	"context"

	"github.com/roomlane/concierge-backend/internal/models"
)

// Store persists dialogue sessions keyed by their ID. Get reports a miss
// (not an error) for unknown or expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, bool, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}
