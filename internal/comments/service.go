package comments

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/docstore"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

type Service struct {
	store   *docstore.Store
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(store *docstore.Store, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:   store,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// Get returns all comment threads of the user, empty if there are none.
func (s *Service) Get(ctx context.Context, user string) *Document {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.comments.get")
	defer span.End()
	span.SetAttributes(attribute.String("user", user))

	doc, _ := docstore.Load(ctx, s.store, docstore.KindComments, user, pkg.NewOrderedMap[[]Comment]())
	if doc == nil {
		return pkg.NewOrderedMap[[]Comment]()
	}
	return doc
}

// Add appends the comment to the tail of its thread and returns the whole thread.
// Comments are never edited or removed.
func (s *Service) Add(ctx context.Context, user string, comment NewComment) (_ []Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.comments.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("user", user),
		attribute.String("key", comment.Key),
	)

	if comment.Key == "" || comment.Text == "" {
		return nil, apperr.Validation("key and text required")
	}
	author := comment.Author
	if author == "" {
		author = AnonymousAuthor
	}

	doc := s.Get(ctx, user)
	thread, _ := doc.Get(comment.Key)
	thread = append(thread, Comment{
		Author: author,
		Text:   comment.Text,
		Time:   s.now().UTC().Truncate(time.Millisecond),
	})
	doc.Set(comment.Key, thread)

	if err := s.store.Save(ctx, docstore.KindComments, user, doc); err != nil {
		return nil, err
	}

	s.metrics.CounterCommentsAdded.Inc()
	log.Debugf("comment added to [%s] of [%s] by [%s]", comment.Key, docstore.NormalizeUser(user), author)
	return thread, nil
}
