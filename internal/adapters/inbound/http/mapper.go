package http

import (
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch {
	case domain.IsValidation(err):
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = err.Error()
	case domain.IsNotFound(err):
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toUser(u domain.User) UserResp {
	return UserResp{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Timezone:            u.Timezone,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func toUserProgress(p domain.UserProgressSummary) UserProgressResp {
	return UserProgressResp{
		UserID:              p.UserID,
		ActiveChallenges:    p.ActiveChallenges,
		CompletedChallenges: p.CompletedChallenges,
		AverageScore:        p.AverageScore,
		ActiveFocusAreas:    p.ActiveFocusAreas,
	}
}

func toChallenge(c domain.Challenge) ChallengeResp {
	resp := ChallengeResp{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		Difficulty:  c.Difficulty,
		Status:      string(c.Status),
		DueDate:     c.DueDate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.FocusAreaID != uuid.Nil {
		focusAreaID := c.FocusAreaID
		resp.FocusAreaID = &focusAreaID
	}
	return resp
}

func toEvaluation(e domain.Evaluation) EvaluationResp {
	return EvaluationResp{
		ID:           e.ID,
		UserID:       e.UserID,
		ChallengeID:  e.ChallengeID,
		Score:        e.Score,
		Strengths:    e.Strengths,
		Improvements: e.Improvements,
		Summary:      e.Summary,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toProfile(p domain.PersonalityProfile) ProfileResp {
	return ProfileResp{
		ID:        p.ID,
		UserID:    p.UserID,
		Traits:    p.Traits,
		Summary:   p.Summary,
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toFocusArea(f domain.FocusArea) FocusAreaResp {
	return FocusAreaResp{
		ID:          f.ID,
		UserID:      f.UserID,
		Name:        f.Name,
		Description: f.Description,
		Priority:    f.Priority,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
