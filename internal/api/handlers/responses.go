package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в dst.
// Неизвестные поля запрещены, тело должно содержать ровно один JSON объект.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	// второй Decode должен вернуть io.EOF - иначе в теле мусор
	if decoder.More() {
		return fmt.Errorf("request body must contain a single JSON object")
	}

	return nil
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		// ошибку кодирования уже некуда репортить - заголовки отправлены
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с ошибкой в формате {error, message}
func RespondError(w http.ResponseWriter, status int, errTitle, message string) {
	RespondJSON(w, status, ErrorResponse{Error: errTitle, Message: message})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, errTitle, message string) {
	RespondError(w, http.StatusBadRequest, errTitle, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, errTitle, message string) {
	RespondError(w, http.StatusNotFound, errTitle, message)
}

// RespondConflict пишет 409 Conflict
func RespondConflict(w http.ResponseWriter, errTitle, message string) {
	RespondError(w, http.StatusConflict, errTitle, message)
}

// RespondInternalError пишет 500 без деталей внутренней ошибки
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusInternalServerError, "Internal server error", message)
}
