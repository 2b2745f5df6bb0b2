package export

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/comments"
	"github.com/2beens/workouttracker/internal/docstore"
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

type Service struct {
	menus    menusReader
	comments commentsReader
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(menusReader menusReader, commentsReader commentsReader, metricsManager *metrics.Manager) *Service {
	return &Service{
		menus:    menusReader,
		comments: commentsReader,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// Export renders the user's CSV. A user without menus exports only comments.
func (s *Service) Export(ctx context.Context, user string) (*File, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.export.csv")
	defer span.End()

	user = docstore.NormalizeUser(user)
	span.SetAttributes(attribute.String("user", user))

	menuDoc, _ := s.menus.Get(ctx, user)
	commentDoc := s.comments.Get(ctx, user)

	s.metrics.CounterExports.Inc()
	file := &File{
		Filename: Filename(user, s.now()),
		Data:     WriteCSV(user, menuDoc, commentDoc),
	}
	log.Debugf("export %s ready, %d bytes", file.Filename, len(file.Data))
	return file, nil
}
