package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"go.uber.org/zap"
)

func (api EvolveServer) CreateFocusArea(w http.ResponseWriter, r *http.Request) {
	var req CreateFocusAreaReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	focusArea, err := api.CreateFocusAreaUC.Execute(r.Context(), req.UserID, req.Name, req.Description, req.Priority)
	if err != nil {
		api.Logger.Error("Error creating focus area", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toFocusArea(focusArea))
}

func (api EvolveServer) UpdateFocusArea(w http.ResponseWriter, r *http.Request) {
	focusAreaID, err := pathUUID(r, "focusAreaId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req UpdateFocusAreaReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	focusArea, err := api.UpdateFocusAreaUC.Execute(r.Context(), focusAreaID, req.Priority, req.Deactivate)
	if err != nil {
		api.Logger.Error("Error updating focus area", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toFocusArea(focusArea))
}

func (api EvolveServer) ListFocusAreas(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	search := domain.FocusAreaSearch{SortBy: querySort(values)}

	var err error
	if search.UserID, err = queryUUID(values, "userId"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.Active, err = queryBool(values, "active"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.MinPriority, err = queryInt(values, "minPriority"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if search.Page, err = queryPage(values); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := api.ListFocusAreasUC.Query(r.Context(), search)
	if err != nil {
		api.Logger.Error("Error listing focus areas", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	resp := ListResp[FocusAreaResp]{
		Items:    []FocusAreaResp{},
		Total:    result.Total,
		Page:     search.Page.Page,
		PageSize: search.Page.PageSize,
	}
	for _, f := range result.Items {
		resp.Items = append(resp.Items, toFocusArea(f))
	}

	respondJSON(w, http.StatusOK, resp)
}
