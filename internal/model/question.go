package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionOrder is assigned by the store, 1-based and dense within a session.
// It is the join key to the question's Answer, not an identifier of its own.
type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SessionID       uint           `json:"session_id" gorm:"not null;index;uniqueIndex:idx_questions_session_order,priority:1"`
	QuestionOrder   int            `json:"question_order" gorm:"not null;uniqueIndex:idx_questions_session_order,priority:2"`
	QuestionText    string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType    string         `json:"question_type" gorm:"not null;default:'general'"` // "technical", "behavioral", "situational", "general"
	DifficultyLevel string         `json:"difficulty_level" gorm:"not null;default:'medium'"` // "easy", "medium", "hard"
	Category        string         `json:"category"`
	Explanation     *string        `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
