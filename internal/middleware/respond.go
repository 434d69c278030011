package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Envelope{Success: false, Message: msg})
}
