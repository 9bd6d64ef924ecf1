package repository

import (
	"github.com/lshigami/Percula/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindByID(id uint) (*model.Session, error)
	// FindByIDForUpdate locks the session row for the duration of tx so that
	// order assignment and counter updates serialize per session.
	FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Session, error)
	FindByUserAndToken(userID, clientToken string) (*model.Session, error)
	FindPageByUser(userID string, offset, limit int) ([]model.Session, error)
	CountByUser(userID string) (int64, error)
	AddCounters(tx *gorm.DB, id uint, questions, answers int) error
	DeleteCascade(tx *gorm.DB, id uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Session, error) {
	query := tx
	// sqlite (used in tests) has no row-level locks; its transactions already
	// serialize writers.
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var session model.Session
	if err := query.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByUserAndToken(userID, clientToken string) (*model.Session, error) {
	var session model.Session
	err := r.db.Where("user_id = ? AND client_token = ?", userID, clientToken).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindPageByUser(userID string, offset, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Session{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *sessionRepository) AddCounters(tx *gorm.DB, id uint, questions, answers int) error {
	updates := map[string]any{}
	if questions != 0 {
		updates["total_questions"] = gorm.Expr("total_questions + ?", questions)
	}
	if answers != 0 {
		updates["total_answers"] = gorm.Expr("total_answers + ?", answers)
	}
	if len(updates) == 0 {
		return nil
	}
	return tx.Model(&model.Session{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the session and all of its questions and answers.
// Children have no independent lifecycle.
func (r *sessionRepository) DeleteCascade(tx *gorm.DB, id uint) error {
	if err := tx.Where("session_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("session_id = ?", id).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Session{}, id).Error
}
