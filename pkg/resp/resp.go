package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse сериализует payload в JSON и пишет его с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
