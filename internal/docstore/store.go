package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

var ErrDocumentNotFound = errors.New("document not found")

type Kind string

const (
	KindUsers        Kind = "users"
	KindMenus        Kind = "menus"
	KindComments     Kind = "comments"
	KindMeasurements Kind = "measurements"
)

func (k Kind) String() string {
	return string(k)
}

// Backend keeps serialized documents by name. Get returns ErrDocumentNotFound
// for a document never written. Put replaces the whole document.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}

// Store reads and writes whole JSON documents, one per (kind, user).
// It takes no locks: two interleaved read-modify-write cycles on the same
// document lose one of the updates, the last writer wins.
type Store struct {
	backend Backend
	metrics *metrics.Manager
}

func New(backend Backend, metricsManager *metrics.Manager) *Store {
	return &Store{
		backend: backend,
		metrics: metricsManager,
	}
}

// NormalizeUser upper-cases a user identifier, documents are namespaced by it.
func NormalizeUser(user string) string {
	return strings.ToUpper(user)
}

// DocumentName returns "<kind>_<USER>", or just the kind for documents
// which are not per user (the user registry).
func DocumentName(kind Kind, user string) (string, error) {
	if user == "" {
		return kind.String(), nil
	}
	user = NormalizeUser(user)
	if strings.ContainsAny(user, `/\`) || strings.Contains(user, "..") || strings.TrimSpace(user) == "" {
		return "", fmt.Errorf("invalid user [%s]", user)
	}
	return kind.String() + "_" + user, nil
}

// Load returns the stored document and true, or the fallback and false when the
// document does not exist or cannot be read. Read failures are logged, not returned.
func Load[T any](ctx context.Context, s *Store, kind Kind, user string, fallback T) (T, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.load")
	defer span.End()

	name, err := DocumentName(kind, user)
	if err != nil {
		s.readFailed(kind, err)
		span.SetStatus(codes.Error, err.Error())
		return fallback, false
	}
	span.SetAttributes(attribute.String("document", name))

	data, err := s.backend.Get(ctx, name)
	if errors.Is(err, ErrDocumentNotFound) {
		return fallback, false
	}
	if err != nil {
		s.readFailed(kind, fmt.Errorf("read %s: %w", name, err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fallback, false
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		s.readFailed(kind, fmt.Errorf("decode %s: %w", name, err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fallback, false
	}

	return doc, true
}

// Save serializes the document and overwrites whatever was stored under its name.
func (s *Store) Save(ctx context.Context, kind Kind, user string, doc any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.countWrite(kind, err)
		span.End()
	}()

	name, err := DocumentName(kind, user)
	if err != nil {
		return apperr.Validation(err.Error())
	}
	span.SetAttributes(attribute.String("document", name))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperr.StorageWrite(name, fmt.Errorf("marshal: %w", err))
	}

	if err := s.backend.Put(ctx, name, data); err != nil {
		return apperr.StorageWrite(name, err)
	}

	log.Tracef("document [%s] saved, %d bytes", name, len(data))
	return nil
}

func (s *Store) readFailed(kind Kind, err error) {
	log.Warnf("docstore: %s, using the default %s document", err, kind)
	if s.metrics != nil {
		s.metrics.CounterStorageReadFailures.WithLabelValues(kind.String()).Inc()
	}
}

func (s *Store) countWrite(kind Kind, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.CounterStorageWrites.With(prometheus.Labels{
		"kind":   kind.String(),
		"result": result,
	}).Inc()
}
