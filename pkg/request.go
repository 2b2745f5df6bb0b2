package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// MaxRequestBodyBytes caps JSON request bodies, whole menu documents included.
const MaxRequestBodyBytes = 10 << 20

// DecodeJSONBody decodes exactly one JSON value from the request body into v.
// Fields unknown to v are rejected.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode request body: %w", err)
	}

	if decoder.More() {
		return errors.New("request body must hold a single JSON value")
	}
	return nil
}

// PathVar returns the unescaped route variable. Routers are set up with
// UseEncodedPath, so values like "2024%2F02%2F08" reach the handlers intact.
func PathVar(r *http.Request, name string) (string, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return "", fmt.Errorf("route variable [%s] missing", name)
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("route variable [%s]: %w", name, err)
	}
	return value, nil
}
