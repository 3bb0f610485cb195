package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func (api EvolveServer) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	user, err := api.RegisterUserUC.Execute(r.Context(), req.Email, req.DisplayName, req.Timezone)
	if err != nil {
		api.Logger.Error("Error registering user", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toUser(user))
}

func (api EvolveServer) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	user, err := api.CompleteOnboardingUC.Execute(r.Context(), userID)
	if err != nil {
		api.Logger.Error("Error completing onboarding", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toUser(user))
}

func (api EvolveServer) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := api.DeleteUserUC.Execute(r.Context(), userID); err != nil {
		api.Logger.Error("Error deleting user", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api EvolveServer) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	progress, err := api.GetUserProgressUC.Query(r.Context(), userID)
	if err != nil {
		api.Logger.Error("Error fetching user progress", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toUserProgress(progress))
}
