package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}

func badRequest(w http.ResponseWriter, message string) {
	respondError(w, ErrorResp{Error: Error{Code: ErrorCode_BadRequest, Message: message}})
}
