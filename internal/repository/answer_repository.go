package repository

import (
	"github.com/lshigami/Percula/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	CreateBatch(tx *gorm.DB, answers []model.Answer) error
	FindBySessionID(sessionID uint) ([]model.Answer, error)
	OrdersBySession(tx *gorm.DB, sessionID uint) ([]int, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CreateBatch(tx *gorm.DB, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return tx.Create(&answers).Error
}

func (r *answerRepository) OrdersBySession(tx *gorm.DB, sessionID uint) ([]int, error) {
	var orders []int
	err := tx.Model(&model.Answer{}).
		Where("session_id = ?", sessionID).
		Pluck("question_order", &orders).Error
	return orders, err
}

func (r *answerRepository) FindBySessionID(sessionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("question_order ASC").
		Find(&answers).Error
	return answers, err
}
