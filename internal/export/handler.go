package export

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apperr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=export_test

type exportService interface {
	Export(ctx context.Context, user string) (*File, error)
}

type Handler struct {
	service exportService
}

func NewHandler(service exportService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/export/{user}", handler.HandleExport).Methods("GET").Name("export-csv")
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.csv")
	defer span.End()

	user, err := pkg.PathVar(r, "user")
	if err != nil {
		pkg.WriteJSONError(w, "invalid user", http.StatusBadRequest)
		return
	}

	file, err := handler.service.Export(ctx, user)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("export csv of [%s]: %w", user, err))
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": file.Filename,
	}))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.CSV, file.Data)
}
