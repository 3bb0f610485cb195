package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/evolvehq/evolve-backend/internal/usecases"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// EvolveServer is the REST API HTTP server for the Evolve application.
type EvolveServer struct {
	Port                  int                          `config:"HTTP_PORT" default:"8080"`
	Logger                *zap.Logger                  `resolve:""`
	RegisterUserUC        usecases.RegisterUser        `resolve:""`
	CompleteOnboardingUC  usecases.CompleteOnboarding  `resolve:""`
	DeleteUserUC          usecases.DeleteUser          `resolve:""`
	GetUserProgressUC     usecases.GetUserProgress     `resolve:""`
	CreateChallengeUC     usecases.CreateChallenge     `resolve:""`
	UpdateChallengeUC     usecases.UpdateChallenge     `resolve:""`
	DeleteChallengeUC     usecases.DeleteChallenge     `resolve:""`
	ListChallengesUC      usecases.ListChallenges      `resolve:""`
	CompleteChallengeUC   usecases.CompleteChallenge   `resolve:""`
	AbandonChallengeUC    usecases.AbandonChallenge    `resolve:""`
	RecordEvaluationUC    usecases.RecordEvaluation    `resolve:""`
	ReviseEvaluationUC    usecases.ReviseEvaluation    `resolve:""`
	EvolveProfileUC       usecases.EvolveProfile       `resolve:""`
	GetProfileUC          usecases.GetProfile          `resolve:""`
	CreateFocusAreaUC     usecases.CreateFocusArea     `resolve:""`
	UpdateFocusAreaUC     usecases.UpdateFocusArea     `resolve:""`
	ListFocusAreasUC      usecases.ListFocusAreas      `resolve:""`
}

func (api EvolveServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)

	mux.HandleFunc("POST /v1/users", api.RegisterUser)
	mux.HandleFunc("DELETE /v1/users/{userId}", api.DeleteUser)
	mux.HandleFunc("POST /v1/users/{userId}/onboarding", api.CompleteOnboarding)
	mux.HandleFunc("GET /v1/users/{userId}/progress", api.GetUserProgress)
	mux.HandleFunc("GET /v1/users/{userId}/profile", api.GetProfile)
	mux.HandleFunc("PUT /v1/users/{userId}/profile", api.EvolveProfile)

	mux.HandleFunc("GET /v1/challenges", api.ListChallenges)
	mux.HandleFunc("POST /v1/challenges", api.CreateChallenge)
	mux.HandleFunc("PATCH /v1/challenges/{challengeId}", api.UpdateChallenge)
	mux.HandleFunc("DELETE /v1/challenges/{challengeId}", api.DeleteChallenge)
	mux.HandleFunc("POST /v1/challenges/{challengeId}/complete", api.CompleteChallenge)
	mux.HandleFunc("POST /v1/challenges/{challengeId}/abandon", api.AbandonChallenge)

	mux.HandleFunc("POST /v1/evaluations", api.RecordEvaluation)
	mux.HandleFunc("PATCH /v1/evaluations/{evaluationId}", api.ReviseEvaluation)

	mux.HandleFunc("GET /v1/focus-areas", api.ListFocusAreas)
	mux.HandleFunc("POST /v1/focus-areas", api.CreateFocusArea)
	mux.HandleFunc("PATCH /v1/focus-areas/{focusAreaId}", api.UpdateFocusArea)

	return mux
}

// Healthz reports liveness.
func (api EvolveServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run starts the HTTP server for the EvolveServer.
func (api EvolveServer) Run(ctx context.Context) error {
	var h http.Handler = api.routes()
	h = telemetry.Middleware("evolve-api")(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("EvolveServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("EvolveServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("EvolveServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the EvolveServer is ready by performing a health check.
func (api EvolveServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
