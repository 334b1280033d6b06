package httpapi

import "net/http"

type SecretsHandler struct {
	SetAPIKey func(key string) error
}

func (h SecretsHandler) SetLushaKey(w http.ResponseWriter, r *http.Request) {
	var req setAPIKeyReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.SetAPIKey(req.APIKey); err != nil {
		writeFailure(w, http.StatusBadRequest, "failed to store API key: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
