package comments

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=comments_test

type commentsService interface {
	Get(ctx context.Context, user string) *Document
	Add(ctx context.Context, user string, comment NewComment) ([]Comment, error)
}

type CommentsResponse struct {
	Comments *Document `json:"comments"`
}

type AddResponse struct {
	OK       bool      `json:"ok"`
	Comments []Comment `json:"comments"`
}

type Handler struct {
	service commentsService
}

func NewHandler(service commentsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/comments/{user}", handler.HandleGet).Methods("GET").Name("get-comments")
	router.HandleFunc("/comments/{user}", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-comment")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comments.get")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, CommentsResponse{Comments: handler.service.Get(ctx, user)}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comments.add")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	var newComment NewComment
	if err := pkg.DecodeJSONBody(w, r, &newComment); err != nil {
		apperr.WriteError(w, apperr.Validation(fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	thread, err := handler.service.Add(ctx, user, newComment)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("add comment to [%s] of [%s]: %w", newComment.Key, user, err))
		return
	}

	pkg.WriteJSON(w, AddResponse{OK: true, Comments: thread}, http.StatusOK)
}
