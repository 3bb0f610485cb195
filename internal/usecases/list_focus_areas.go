package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
)

// ListFocusAreas defines the interface for the ListFocusAreas use case.
type ListFocusAreas interface {
	Query(ctx context.Context, search domain.FocusAreaSearch) (domain.SearchResult[domain.FocusArea], error)
}

// ListFocusAreasImpl is the implementation of the ListFocusAreas use case.
type ListFocusAreasImpl struct {
	focusAreaRepo domain.FocusAreaRepository
}

// NewListFocusAreasImpl creates a new instance of ListFocusAreasImpl.
func NewListFocusAreasImpl(focusAreaRepo domain.FocusAreaRepository) ListFocusAreasImpl {
	return ListFocusAreasImpl{focusAreaRepo: focusAreaRepo}
}

// Query retrieves a filtered, sorted, paginated page of focus areas.
func (lfi ListFocusAreasImpl) Query(ctx context.Context, search domain.FocusAreaSearch) (domain.SearchResult[domain.FocusArea], error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := lfi.focusAreaRepo.Search(spanCtx, search)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult[domain.FocusArea]{}, err
	}
	return result, nil
}

// InitListFocusAreas initializes the ListFocusAreas use case.
type InitListFocusAreas struct {
	FocusAreaRepo domain.FocusAreaRepository `resolve:""`
}

// Initialize registers the ListFocusAreasImpl use case in the dependency container.
func (ilf InitListFocusAreas) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListFocusAreas](NewListFocusAreasImpl(ilf.FocusAreaRepo))
	return ctx, nil
}
