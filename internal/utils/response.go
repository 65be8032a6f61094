package utils

import (
	"encoding/json"
	"net/http"
)

// RespondWithJSON for the few JSON endpoints the portal serves (health).
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
