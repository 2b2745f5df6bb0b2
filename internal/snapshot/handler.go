package snapshot

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=snapshot_test

type syncService interface {
	Sync(ctx context.Context, user string) Snapshot
}

type Handler struct {
	service syncService
}

func NewHandler(service syncService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sync/{user}", handler.HandleSync).Methods("GET").Name("sync")
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot.sync")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	// polled every few seconds
	w.Header().Set("Cache-Control", "no-store")
	pkg.WriteJSON(w, handler.service.Sync(ctx, user), http.StatusOK)
}
