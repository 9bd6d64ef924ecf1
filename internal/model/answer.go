package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer joins its Question by (SessionID, QuestionOrder). At most one answer
// per question; an answer without a matching question is ignored at read time.
type Answer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SessionID     uint           `json:"session_id" gorm:"not null;index;uniqueIndex:idx_answers_session_order,priority:1"`
	QuestionOrder int            `json:"question_order" gorm:"not null;uniqueIndex:idx_answers_session_order,priority:2"`
	AnswerText    string         `json:"answer_text" gorm:"type:text;not null"`
	KeyPoints     datatypes.JSON `json:"key_points,omitempty"`
	Tips          *string        `json:"tips,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
