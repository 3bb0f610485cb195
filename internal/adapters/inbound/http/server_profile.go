package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func (api EvolveServer) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	profile, err := api.GetProfileUC.Query(r.Context(), userID)
	if err != nil {
		api.Logger.Error("Error fetching profile", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toProfile(profile))
}

func (api EvolveServer) EvolveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req EvolveProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	profile, err := api.EvolveProfileUC.Execute(r.Context(), userID, req.Traits, req.Summary)
	if err != nil {
		api.Logger.Error("Error evolving profile", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toProfile(profile))
}
