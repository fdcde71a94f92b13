package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/qanda/internal/common"
)

// decodeRequest unmarshals the request body into dst and runs the endpoint's
// presence check. Undecodable bodies and failed checks both come back as
// common.ErrorValidation; the handler picks the client-facing message.
func decodeRequest(r *http.Request, dst any, valid func() bool) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.ErrorValidation
	}
	if !valid() {
		return common.ErrorValidation
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondMessage writes the uniform `{message}` error body every failure path
// of the API uses.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
