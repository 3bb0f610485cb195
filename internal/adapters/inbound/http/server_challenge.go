package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/usecases"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (api EvolveServer) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req CreateChallengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	params := usecases.CreateChallengeParams{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		DueDate:     req.DueDate,
	}
	if req.FocusAreaID != nil {
		params.FocusAreaID = *req.FocusAreaID
	}

	challenge, err := api.CreateChallengeUC.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Error("Error creating challenge", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toChallenge(challenge))
}

func (api EvolveServer) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathUUID(r, "challengeId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req UpdateChallengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	challenge, err := api.UpdateChallengeUC.Execute(r.Context(), challengeID, req.Title, req.Description, req.Difficulty, req.DueDate)
	if err != nil {
		api.Logger.Error("Error updating challenge", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChallenge(challenge))
}

func (api EvolveServer) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathUUID(r, "challengeId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := api.DeleteChallengeUC.Execute(r.Context(), challengeID); err != nil {
		api.Logger.Error("Error deleting challenge", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api EvolveServer) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	api.transitionChallenge(w, r, api.CompleteChallengeUC.Execute)
}

func (api EvolveServer) AbandonChallenge(w http.ResponseWriter, r *http.Request) {
	api.transitionChallenge(w, r, api.AbandonChallengeUC.Execute)
}

func (api EvolveServer) transitionChallenge(w http.ResponseWriter, r *http.Request, transition func(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error)) {
	challengeID, err := pathUUID(r, "challengeId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	challenge, err := transition(r.Context(), challengeID)
	if err != nil {
		api.Logger.Error("Error transitioning challenge", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChallenge(challenge))
}

func (api EvolveServer) ListChallenges(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	search := domain.ChallengeSearch{SortBy: querySort(values)}

	var err error
	if search.UserID, err = queryUUID(values, "userId"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.FocusAreaID, err = queryUUID(values, "focusAreaId"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if raw := values.Get("status"); raw != "" {
		status := domain.ChallengeStatus(raw)
		search.Status = &status
	}
	if search.DueAfter, err = queryDate(values, "dueAfter"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.DueBefore, err = queryDate(values, "dueBefore"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.Page, err = queryPage(values); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := api.ListChallengesUC.Query(r.Context(), search)
	if err != nil {
		api.Logger.Error("Error listing challenges", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	resp := ListResp[ChallengeResp]{
		Items:    []ChallengeResp{},
		Total:    result.Total,
		Page:     search.Page.Page,
		PageSize: search.Page.PageSize,
	}
	for _, c := range result.Items {
		resp.Items = append(resp.Items, toChallenge(c))
	}

	respondJSON(w, http.StatusOK, resp)
}
