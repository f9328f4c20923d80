package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathviz/pkg/errors"
	pvio "github.com/matzehuels/pathviz/pkg/io"
)

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeSessionNotFound), errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an error body. Errors without a code are
// reported as INTERNAL_ERROR and their text is only logged.
func respondError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	status := statusFor(err)
	body := errorBody{Code: errors.GetCode(err), Error: errors.UserMessage(err)}
	if body.Code == "" || status == http.StatusInternalServerError {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		if body.Code == "" {
			body = errorBody{Code: errors.ErrCodeInternal, Error: "internal error"}
		}
	}
	recordError(r, err)
	respondJSON(w, status, body)
}

// readBody reads a bounded request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return data, nil
}

// decodeJSON unmarshals a request body into v.
func decodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// decodeMatrix reads the {size, matrix} part of a request body. Cells may
// be numbers or strings, exactly as in a JSON matrix file.
func decodeMatrix(data []byte) (pvio.Matrix, error) {
	return pvio.DecodeMatrix(bytes.NewReader(data), pvio.FormatJSON)
}

// requireQuery checks that both ends of a query are present.
func requireQuery(start, end *int) error {
	if start == nil || end == nil {
		return errors.New(errors.ErrCodeInvalidInput, "start and end are required")
	}
	return nil
}

// contentType returns the media type for a rendered format.
func contentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "pdf":
		return "application/pdf"
	case "json":
		return "application/json"
	case "dot":
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
