package measurements

import (
	"context"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/docstore"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
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

// List returns the user's ledger, newest date first.
func (s *Service) List(ctx context.Context, user string) []Entry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.list")
	defer span.End()
	span.SetAttributes(attribute.String("user", user))

	entries, _ := docstore.Load(ctx, s.store, docstore.KindMeasurements, user, []Entry{})
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// Upsert stores the entry under its date, replacing the one already there,
// and returns the whole ledger sorted by date descending.
func (s *Service) Upsert(ctx context.Context, user string, input EntryInput) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.upsert")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("user", user),
		attribute.String("date", input.Date),
	)

	if input.Date == "" {
		return nil, apperr.Validation("date required")
	}

	entry := input.toEntry(s.now().UTC().Truncate(time.Millisecond))
	entries := s.List(ctx, user)
	if i := slices.IndexFunc(entries, func(e Entry) bool { return e.Date == entry.Date }); i >= 0 {
		entries[i] = entry
	} else {
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return compareDatesDesc(a.Date, b.Date)
	})

	if err := s.store.Save(ctx, docstore.KindMeasurements, user, entries); err != nil {
		return nil, err
	}

	s.metrics.CounterMeasurementsUpsert.Inc()
	log.Debugf("measurement [%s] of [%s] saved, %d entries", entry.Date, docstore.NormalizeUser(user), len(entries))
	return entries, nil
}

// Remove drops the entries of the given date. Removing a date which is not
// there still saves and returns the ledger unchanged.
func (s *Service) Remove(ctx context.Context, user, date string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.remove")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("user", user),
		attribute.String("date", date),
	)

	entries := slices.DeleteFunc(s.List(ctx, user), func(e Entry) bool {
		return e.Date == date
	})

	if err := s.store.Save(ctx, docstore.KindMeasurements, user, entries); err != nil {
		return nil, err
	}

	s.metrics.CounterMeasurementsRemove.Inc()
	log.Debugf("measurement [%s] of [%s] removed, %d entries left", date, docstore.NormalizeUser(user), len(entries))
	return entries, nil
}
