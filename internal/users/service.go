package users

import (
	"context"
	"strings"

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
}

func NewService(store *docstore.Store, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:   store,
		metrics: metricsManager,
	}
}

// List returns the stored registry, or the default one if nothing was registered yet.
func (s *Service) List(ctx context.Context) Registry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.list")
	defer span.End()

	registry, _ := docstore.Load(ctx, s.store, docstore.KindUsers, "", DefaultRegistry())
	return registry
}

// Register adds the upper-cased name to the registry, unless it is already there.
func (s *Service) Register(ctx context.Context, name string) (_ Registry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	user := docstore.NormalizeUser(strings.TrimSpace(name))
	if user == "" {
		return Registry{}, apperr.Validation("name required")
	}
	span.SetAttributes(attribute.String("user", user))

	registry := s.List(ctx)
	added := !registry.Contains(user)
	if added {
		registry.Users = append(registry.Users, user)
	}

	if err := s.store.Save(ctx, docstore.KindUsers, "", registry); err != nil {
		return Registry{}, err
	}

	if added {
		s.metrics.CounterUsersRegistered.Inc()
		log.Debugf("new user registered: %s", user)
	}
	return registry, nil
}
