package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
)

// ListChallenges defines the interface for the ListChallenges use case.
type ListChallenges interface {
	Query(ctx context.Context, search domain.ChallengeSearch) (domain.SearchResult[domain.Challenge], error)
}

// ListChallengesImpl is the implementation of the ListChallenges use case.
type ListChallengesImpl struct {
	challengeRepo domain.ChallengeRepository
}

// NewListChallengesImpl creates a new instance of ListChallengesImpl.
func NewListChallengesImpl(challengeRepo domain.ChallengeRepository) ListChallengesImpl {
	return ListChallengesImpl{challengeRepo: challengeRepo}
}

// Query retrieves a filtered, sorted, paginated page of challenges.
func (lci ListChallengesImpl) Query(ctx context.Context, search domain.ChallengeSearch) (domain.SearchResult[domain.Challenge], error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := lci.challengeRepo.Search(spanCtx, search)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult[domain.Challenge]{}, err
	}
	return result, nil
}

// InitListChallenges initializes the ListChallenges use case.
type InitListChallenges struct {
	ChallengeRepo domain.ChallengeRepository `resolve:""`
}

// Initialize registers the ListChallengesImpl use case in the dependency container.
func (ilc InitListChallenges) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListChallenges](NewListChallengesImpl(ilc.ChallengeRepo))
	return ctx, nil
}
