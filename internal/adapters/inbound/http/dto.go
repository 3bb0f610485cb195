package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies API errors for clients.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound      ErrorCode = "NOT_FOUND"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is the API error payload.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an API error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// UserResp is the API representation of a user.
type UserResp struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	DisplayName         string    `json:"displayName"`
	Timezone            string    `json:"timezone"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RegisterUserReq is the request body for registering a user.
type RegisterUserReq struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Timezone    string `json:"timezone"`
}

// UserProgressResp is the API representation of a user's progress summary.
type UserProgressResp struct {
	UserID              uuid.UUID `json:"userId"`
	ActiveChallenges    int       `json:"activeChallenges"`
	CompletedChallenges int       `json:"completedChallenges"`
	AverageScore        float64   `json:"averageScore"`
	ActiveFocusAreas    int       `json:"activeFocusAreas"`
}

// ChallengeResp is the API representation of a challenge.
type ChallengeResp struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	FocusAreaID *uuid.UUID `json:"focusAreaId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  int        `json:"difficulty"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateChallengeReq is the request body for creating a challenge.
type CreateChallengeReq struct {
	UserID      uuid.UUID  `json:"userId"`
	FocusAreaID *uuid.UUID `json:"focusAreaId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  int        `json:"difficulty"`
	DueDate     time.Time  `json:"dueDate"`
}

// UpdateChallengeReq is the request body for updating a challenge. Absent
// fields leave the current value untouched.
type UpdateChallengeReq struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Difficulty  *int       `json:"difficulty,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// EvaluationResp is the API representation of an evaluation.
type EvaluationResp struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ChallengeID  uuid.UUID `json:"challengeId"`
	Score        int       `json:"score"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RecordEvaluationReq is the request body for recording an evaluation.
type RecordEvaluationReq struct {
	ChallengeID  uuid.UUID `json:"challengeId"`
	Score        int       `json:"score"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	Summary      string    `json:"summary"`
}

// ReviseEvaluationReq is the request body for revising an evaluation.
type ReviseEvaluationReq struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// ProfileResp is the API representation of a personality profile.
type ProfileResp struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"userId"`
	Traits    map[string]float64 `json:"traits"`
	Summary   string             `json:"summary"`
	Version   int                `json:"version"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// EvolveProfileReq is the request body for evolving a personality profile.
type EvolveProfileReq struct {
	Traits  map[string]float64 `json:"traits"`
	Summary string             `json:"summary"`
}

// FocusAreaResp is the API representation of a focus area.
type FocusAreaResp struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateFocusAreaReq is the request body for creating a focus area.
type CreateFocusAreaReq struct {
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
}

// UpdateFocusAreaReq is the request body for updating a focus area.
type UpdateFocusAreaReq struct {
	Priority   *int `json:"priority,omitempty"`
	Deactivate bool `json:"deactivate,omitempty"`
}

// ListResp is a paginated list response.
type ListResp[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
