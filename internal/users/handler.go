package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=users_test

type usersService interface {
	List(ctx context.Context) Registry
	Register(ctx context.Context, name string) (Registry, error)
}

type RegisterRequest struct {
	Name string `json:"name"`
}

type RegisterResponse struct {
	OK    bool     `json:"ok"`
	Users []string `json:"users"`
}

type Handler struct {
	service usersService
}

func NewHandler(service usersService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/users", handler.HandleList).Methods("GET").Name("list-users")
	router.HandleFunc("/users", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register-user")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.list")
	defer span.End()

	pkg.WriteJSON(w, handler.service.List(ctx), http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Debugf("register user: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	registry, err := handler.service.Register(ctx, req.Name)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("register user [%s]: %w", req.Name, err))
		return
	}

	pkg.WriteJSON(w, RegisterResponse{OK: true, Users: registry.Users}, http.StatusOK)
}
