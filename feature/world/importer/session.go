package importer

import (
	"time"

	"rwk-afmg/core/logger"
	"rwk-afmg/feature/world/models"
	"rwk-afmg/feature/world/resolve"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the state of one ingestion run. It is created by Run and
// discarded when the run returns.
type Session struct {
	RunID     string
	Header    models.MapHeader
	StartedAt time.Time
	Options   Options
	Handles   *resolve.Handles
	Logger    *zap.Logger
}

func newSession(header models.MapHeader, opts Options, l *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		RunID:     id,
		Header:    header,
		StartedAt: time.Now(),
		Options:   opts,
		Handles:   resolve.NewHandles(),
		Logger:    logger.ForRun(l, id, header.Seed),
	}
}
