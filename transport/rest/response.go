package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeUnauthorized = "unauthorized"
	maxBodyBytes     = 16 << 10
)

var statuses = map[string]int{
	apperror.CodeValidation:     http.StatusBadRequest,
	apperror.CodeNotFound:       http.StatusNotFound,
	apperror.CodeNotParticipant: http.StatusForbidden,
	apperror.CodeInvalidTurn:    http.StatusConflict,
	apperror.CodeCellOccupied:   http.StatusConflict,
	apperror.CodeConflict:       http.StatusConflict,
	apperror.CodeInternal:       http.StatusInternalServerError,
}

// statusOf maps the domain error kinds onto HTTP.
func statusOf(err error) (int, string) {
	if errors.Is(err, service.ErrInvalidToken) {
		return http.StatusUnauthorized, codeUnauthorized
	}

	code := apperror.Code(err)

	return statuses[code], code
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status, code := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = "Internal Server Error"
	}

	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// decodeBody - bodies over maxBodyBytes are a validation error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return errors.Join(apperror.ErrValidation, err)
	}

	return nil
}
