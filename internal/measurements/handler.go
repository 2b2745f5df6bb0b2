package measurements

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=measurements_test

type measurementsService interface {
	List(ctx context.Context, user string) []Entry
	Upsert(ctx context.Context, user string, input EntryInput) ([]Entry, error)
	Remove(ctx context.Context, user, date string) ([]Entry, error)
}

type ListResponse struct {
	Measurements []Entry `json:"measurements"`
}

type UpdateResponse struct {
	OK           bool    `json:"ok"`
	Measurements []Entry `json:"measurements"`
}

type Handler struct {
	service measurementsService
}

func NewHandler(service measurementsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/measurements/{user}", handler.HandleList).Methods("GET").Name("list-measurements")
	router.HandleFunc("/measurements/{user}", handler.HandleUpsert).Methods("POST", "OPTIONS").Name("upsert-measurement")
	router.HandleFunc("/measurements/{user}/{date}", handler.HandleRemove).Methods("DELETE", "OPTIONS").Name("remove-measurement")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, ListResponse{Measurements: handler.service.List(ctx, user)}, http.StatusOK)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.upsert")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	var input EntryInput
	if err := pkg.DecodeJSONBody(w, r, &input); err != nil {
		apperr.WriteError(w, apperr.Validation(fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	entries, err := handler.service.Upsert(ctx, user, input)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("upsert measurement [%s] of [%s]: %w", input.Date, user, err))
		return
	}

	pkg.WriteJSON(w, UpdateResponse{OK: true, Measurements: entries}, http.StatusOK)
}

func (handler *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.remove")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}
	date, err := pkg.PathVar(r, "date")
	if err != nil {
		pkg.WriteJSONError(w, "invalid date", http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Remove(ctx, user, date)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("remove measurement [%s] of [%s]: %w", date, user, err))
		return
	}

	pkg.WriteJSON(w, UpdateResponse{OK: true, Measurements: entries}, http.StatusOK)
}
