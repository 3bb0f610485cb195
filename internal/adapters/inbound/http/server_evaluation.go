package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evolvehq/evolve-backend/internal/usecases"
	"go.uber.org/zap"
)

func (api EvolveServer) RecordEvaluation(w http.ResponseWriter, r *http.Request) {
	var req RecordEvaluationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	evaluation, err := api.RecordEvaluationUC.Execute(r.Context(), usecases.RecordEvaluationParams{
		ChallengeID:  req.ChallengeID,
		Score:        req.Score,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Summary:      req.Summary,
	})
	if err != nil {
		api.Logger.Error("Error recording evaluation", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toEvaluation(evaluation))
}

func (api EvolveServer) ReviseEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := pathUUID(r, "evaluationId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req ReviseEvaluationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	evaluation, err := api.ReviseEvaluationUC.Execute(r.Context(), evaluationID, req.Score, req.Summary)
	if err != nil {
		api.Logger.Error("Error revising evaluation", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toEvaluation(evaluation))
}
