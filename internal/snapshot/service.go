package snapshot

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/comments"
	"github.com/2beens/workouttracker/internal/measurements"
	"github.com/2beens/workouttracker/internal/menus"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

type menusReader interface {
	Get(ctx context.Context, user string) (*menus.Document, bool)
}

type commentsReader interface {
	Get(ctx context.Context, user string) *comments.Document
}

type measurementsReader interface {
	List(ctx context.Context, user string) []measurements.Entry
}

// Snapshot is everything a polling client shows for one user. Clients replace
// their state with it as a whole. ServerTime is in Unix milliseconds.
type Snapshot struct {
	Menus        *menus.Document      `json:"menus"`
	Comments     *comments.Document   `json:"comments"`
	Measurements []measurements.Entry `json:"measurements"`
	ServerTime   int64                `json:"serverTime"`
}

type Service struct {
	menus        menusReader
	comments     commentsReader
	measurements measurementsReader
	metrics      *metrics.Manager
	now          func() time.Time
}

func NewService(
	menusReader menusReader,
	commentsReader commentsReader,
	measurementsReader measurementsReader,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		menus:        menusReader,
		comments:     commentsReader,
		measurements: measurementsReader,
		metrics:      metricsManager,
		now:          time.Now,
	}
}

// Sync reads the three documents one after another. A write landing in between
// shows up in some parts of the snapshot and not in others.
func (s *Service) Sync(ctx context.Context, user string) Snapshot {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.snapshot.sync")
	defer span.End()
	span.SetAttributes(attribute.String("user", user))

	menuDoc, _ := s.menus.Get(ctx, user)
	snapshot := Snapshot{
		Menus:        menuDoc,
		Comments:     s.comments.Get(ctx, user),
		Measurements: s.measurements.List(ctx, user),
		ServerTime:   s.now().UnixMilli(),
	}

	s.metrics.CounterSyncs.Inc()
	return snapshot
}
