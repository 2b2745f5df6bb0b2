package menus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=menus_test

type menusService interface {
	Get(ctx context.Context, user string) (*Document, bool)
	Replace(ctx context.Context, user string, doc *Document) error
	PatchTab(ctx context.Context, user, tab string, exercises []Exercise) error
}

// MenusResponse carries a null document for users who never saved menus.
type MenusResponse struct {
	Menus *Document `json:"menus"`
}

type ReplaceRequest struct {
	Menus *pkg.StrictOrderedMap[[]Exercise] `json:"menus"`
}

type PatchTabRequest struct {
	Exercises []Exercise `json:"exercises"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type Handler struct {
	service menusService
}

func NewHandler(service menusService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/menus/{user}", handler.HandleGet).Methods("GET").Name("get-menus")
	router.HandleFunc("/menus/{user}", handler.HandleReplace).Methods("PUT", "OPTIONS").Name("replace-menus")
	router.HandleFunc("/menus/{user}/{tab}", handler.HandlePatchTab).Methods("PATCH", "OPTIONS").Name("patch-menu-tab")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.menus.get")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	doc, _ := handler.service.Get(ctx, user)
	pkg.WriteJSON(w, MenusResponse{Menus: doc}, http.StatusOK)
}

func (handler *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.menus.replace")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	var req ReplaceRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		apperr.WriteError(w, apperr.Validation(fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	var doc *Document
	if req.Menus != nil {
		doc = &req.Menus.OrderedMap
	}
	if err := handler.service.Replace(ctx, user, doc); err != nil {
		apperr.WriteError(w, fmt.Errorf("replace menus of [%s]: %w", user, err))
		return
	}

	pkg.WriteJSON(w, OKResponse{OK: true}, http.StatusOK)
}

func (handler *Handler) HandlePatchTab(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PATCH, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.menus.patchtab")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}
	tab, err := pkg.PathVar(r, "tab")
	if err != nil {
		pkg.WriteJSONError(w, "invalid tab", http.StatusBadRequest)
		return
	}

	var req PatchTabRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		apperr.WriteError(w, apperr.Validation(fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	if err := handler.service.PatchTab(ctx, user, tab, req.Exercises); err != nil {
		apperr.WriteError(w, fmt.Errorf("patch menu tab [%s] of [%s]: %w", tab, user, err))
		return
	}

	pkg.WriteJSON(w, OKResponse{OK: true}, http.StatusOK)
}
