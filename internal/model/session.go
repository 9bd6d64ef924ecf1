package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Session is one job-title/description context together with everything the
// user generated for it. Owned exclusively by UserID.
type Session struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          string         `json:"user_id" gorm:"not null;index;uniqueIndex:idx_sessions_user_client_token,priority:1"`
	SessionName     string         `json:"session_name" gorm:"not null"`
	JobTitle        string         `json:"job_title" gorm:"not null"`
	JobDescription  string         `json:"job_description" gorm:"type:text;not null"`
	ModelUsed       string         `json:"model_used" gorm:"not null"`
	LinkedinProfile datatypes.JSON `json:"linkedin_profile,omitempty"`
	TotalQuestions  int            `json:"total_questions" gorm:"not null;default:0"`
	TotalAnswers    int            `json:"total_answers" gorm:"not null;default:0"`
	TokensUsed      int            `json:"tokens_used" gorm:"not null;default:0"`
	EstimatedCost   float64        `json:"estimated_cost" gorm:"not null;default:0"`
	ClientToken     *string        `json:"client_token,omitempty" gorm:"uniqueIndex:idx_sessions_user_client_token,priority:2"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:SessionID"`
	Answers         []Answer       `json:"answers,omitempty" gorm:"foreignKey:SessionID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
