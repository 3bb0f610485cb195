package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/evolvehq/evolve-backend/internal/adapters/inbound/http"
	"github.com/evolvehq/evolve-backend/internal/adapters/inbound/workers"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/config"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/log"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/postgres"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/pubsub"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/redis"
	"github.com/evolvehq/evolve-backend/internal/adapters/outbound/time"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/evolvehq/evolve-backend/internal/usecases"
)

// initializers returns the application's initializer pipeline. Initializers
// run sequentially and each one's resolve fields are wired immediately before
// it runs, so every dependency must be registered by an earlier entry. The
// unit of work resolves the event publisher and the cache invalidator, which
// therefore come before it.
func initializers() []symbiont.Initializer {
	return []symbiont.Initializer{
		&log.InitLogger{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&config.InitVaultProvider{},
		&postgres.InitDB{},
		&pubsub.InitClient{},
		&pubsub.InitPublisher{},
		&redis.InitCacheInvalidator{},
		&postgres.InitUnitOfWork{},
		&postgres.InitUserRepository{},
		&postgres.InitChallengeRepository{},
		&postgres.InitEvaluationRepository{},
		&postgres.InitPersonalityProfileRepository{},
		&postgres.InitFocusAreaRepository{},
		&time.InitCurrentTimeProvider{},

		&usecases.InitRegisterUser{},
		&usecases.InitCompleteOnboarding{},
		&usecases.InitDeleteUser{},
		&usecases.InitGetUserProgress{},
		&usecases.InitCreateChallenge{},
		&usecases.InitUpdateChallenge{},
		&usecases.InitDeleteChallenge{},
		&usecases.InitListChallenges{},
		&usecases.InitCompleteChallenge{},
		&usecases.InitAbandonChallenge{},
		&usecases.InitRecordEvaluation{},
		&usecases.InitReviseEvaluation{},
		&usecases.InitEvolveProfile{},
		&usecases.InitGetProfile{},
		&usecases.InitCreateFocusArea{},
		&usecases.InitUpdateFocusArea{},
		&usecases.InitListFocusAreas{},
		&usecases.InitRelayOutbox{},
	}
}

// NewEvolveApp creates and returns a new instance of the Evolve application.
func NewEvolveApp(extra ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(extra...).
		Initialize(initializers()...).
		Host(
			&http.EvolveServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
