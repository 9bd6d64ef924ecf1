package repository

import (
	"github.com/lshigami/Percula/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateBatch(tx *gorm.DB, questions []model.Question) error
	FindBySessionID(sessionID uint) ([]model.Question, error)
	MaxOrder(tx *gorm.DB, sessionID uint) (int, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateBatch(tx *gorm.DB, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return tx.Create(&questions).Error
}

func (r *questionRepository) FindBySessionID(sessionID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("question_order ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) MaxOrder(tx *gorm.DB, sessionID uint) (int, error) {
	var max int
	err := tx.Model(&model.Question{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(question_order), 0)").
		Scan(&max).Error
	return max, err
}
