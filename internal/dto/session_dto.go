package dto

import (
	"encoding/json"
	"time"
)

// SessionCreateRequest is the body for creating a new prep session.
// ClientToken is the server-issued idempotency token; a replay with the same
// token returns the originally created session.
type SessionCreateRequest struct {
	SessionName     string          `json:"session_name" binding:"required"`
	JobTitle        string          `json:"job_title" binding:"required"`
	JobDescription  string          `json:"job_description" binding:"required"`
	ModelUsed       string          `json:"model_used" binding:"required"`
	LinkedinProfile json.RawMessage `json:"linkedin_profile,omitempty"`
	TokensUsed      int             `json:"tokens_used" binding:"omitempty,min=0"`
	EstimatedCost   float64         `json:"estimated_cost" binding:"omitempty,min=0"`
	ClientToken     *string         `json:"client_token,omitempty" binding:"omitempty,uuid"`
}

// QuestionAppendDTO carries one question to append. The store assigns
// question_order; any client-side numbering is ignored.
type QuestionAppendDTO struct {
	QuestionText    string  `json:"question_text" binding:"required"`
	QuestionType    string  `json:"question_type" binding:"omitempty,oneof=technical behavioral situational general"`
	DifficultyLevel string  `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
	Category        string  `json:"category"`
	Explanation     *string `json:"explanation,omitempty"`
}

type AppendQuestionsRequest struct {
	Questions []QuestionAppendDTO `json:"questions" binding:"required,min=1,dive"`
}

// AnswerAppendDTO carries one answer; question_order must match the order the
// store returned when the corresponding question batch was appended.
type AnswerAppendDTO struct {
	QuestionOrder int      `json:"question_order" binding:"required,min=1"`
	AnswerText    string   `json:"answer_text" binding:"required"`
	KeyPoints     []string `json:"key_points,omitempty"`
	Tips          *string  `json:"tips,omitempty"`
}

type AppendAnswersRequest struct {
	Answers []AnswerAppendDTO `json:"answers" binding:"required,min=1,dive"`
}

type SessionResponse struct {
	ID              uint            `json:"id"`
	UserID          string          `json:"user_id"`
	SessionName     string          `json:"session_name"`
	JobTitle        string          `json:"job_title"`
	JobDescription  string          `json:"job_description"`
	ModelUsed       string          `json:"model_used"`
	LinkedinProfile json.RawMessage `json:"linkedin_profile,omitempty"`
	TotalQuestions  int             `json:"total_questions"`
	TotalAnswers    int             `json:"total_answers"`
	TokensUsed      int             `json:"tokens_used"`
	EstimatedCost   float64         `json:"estimated_cost"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AnswerResponse struct {
	QuestionOrder int      `json:"question_order"`
	AnswerText    string   `json:"answer_text"`
	KeyPoints     []string `json:"key_points,omitempty"`
	Tips          *string  `json:"tips,omitempty"`
}

// QuestionWithAnswerResponse nests the joined answer under its question;
// Answer is null when no answer with a matching order exists.
type QuestionWithAnswerResponse struct {
	QuestionOrder   int             `json:"question_order"`
	QuestionText    string          `json:"question_text"`
	QuestionType    string          `json:"question_type"`
	DifficultyLevel string          `json:"difficulty_level"`
	Category        string          `json:"category"`
	Explanation     *string         `json:"explanation,omitempty"`
	Answer          *AnswerResponse `json:"answer"`
}

type SessionDetailResponse struct {
	Session   SessionResponse              `json:"session"`
	Questions []QuestionWithAnswerResponse `json:"questions"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type SessionListResponse struct {
	Sessions   []SessionResponse  `json:"sessions"`
	Pagination PaginationResponse `json:"pagination"`
}

type AppendQuestionsResponse struct {
	Count  int   `json:"count"`
	Orders []int `json:"orders"`
}

type AppendAnswersResponse struct {
	Count int `json:"count"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
