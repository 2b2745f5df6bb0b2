package menus

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/docstore"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

type Service struct {
	store *docstore.Store
}

func NewService(store *docstore.Store) *Service {
	return &Service{
		store: store,
	}
}

// Get returns the user's menu document and true, or nil and false when the
// user never saved one. The clients then fall back to their built-in menus.
func (s *Service) Get(ctx context.Context, user string) (*Document, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.menus.get")
	defer span.End()
	span.SetAttributes(attribute.String("user", user))

	doc, _ := docstore.Load[*Document](ctx, s.store, docstore.KindMenus, user, nil)
	// a stored null is no document either
	return doc, doc != nil
}

// Replace overwrites the whole menu document of the user.
func (s *Service) Replace(ctx context.Context, user string, doc *Document) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.menus.replace")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("user", user))

	if doc == nil {
		return apperr.Validation("menus required")
	}

	if err := s.store.Save(ctx, docstore.KindMenus, user, doc); err != nil {
		return err
	}

	log.Debugf("menus of [%s] replaced, %d tabs", docstore.NormalizeUser(user), doc.Len())
	return nil
}

// PatchTab sets the exercises of one tab, leaving the other tabs as they are.
// Only Replace can create the document, patching a missing one fails with not found.
func (s *Service) PatchTab(ctx context.Context, user, tab string, exercises []Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.menus.patchtab")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("user", user),
		attribute.String("tab", tab),
	)

	if exercises == nil {
		return apperr.Validation("exercises required")
	}

	doc, ok := s.Get(ctx, user)
	if !ok {
		return apperr.NotFound("no data yet")
	}

	doc.Set(tab, exercises)
	if err := s.store.Save(ctx, docstore.KindMenus, user, doc); err != nil {
		return err
	}

	log.Debugf("menu tab [%s] of [%s] saved, %d exercises", tab, docstore.NormalizeUser(user), len(exercises))
	return nil
}
