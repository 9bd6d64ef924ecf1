package service

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Percula/internal/apperr"
	"github.com/lshigami/Percula/internal/dto"
	"github.com/lshigami/Percula/internal/model"
	"github.com/lshigami/Percula/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// Hard cap on questions per session. Order assignment is server-side, so
	// the cap is enforced here rather than trusted to the client.
	maxQuestionsPerSession = 20

	defaultPageLimit = 10
	maxPageLimit     = 50
)

// SessionService implements the session store: CRUD plus append operations,
// with per-user ownership enforced on every call.
type SessionService interface {
	IssueToken() dto.TokenResponse
	Create(userID string, req dto.SessionCreateRequest) (*dto.SessionResponse, error)
	List(userID string, page, limit int) (*dto.SessionListResponse, error)
	Get(userID string, sessionID uint) (*dto.SessionDetailResponse, error)
	Delete(userID string, sessionID uint) error
	AppendQuestions(userID string, sessionID uint, req dto.AppendQuestionsRequest) (*dto.AppendQuestionsResponse, error)
	AppendAnswers(userID string, sessionID uint, req dto.AppendAnswersRequest) (*dto.AppendAnswersResponse, error)
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	db           *gorm.DB
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		db:           db,
	}
}

// IssueToken mints an idempotency token for a later Create call. The token is
// server-issued so two tabs cannot invent the same "fresh" key independently.
func (s *sessionService) IssueToken() dto.TokenResponse {
	return dto.TokenResponse{Token: uuid.NewString()}
}

func (s *sessionService) Create(userID string, req dto.SessionCreateRequest) (*dto.SessionResponse, error) {
	if req.ClientToken != nil {
		existing, err := s.sessionRepo.FindByUserAndToken(userID, *req.ClientToken)
		if err == nil {
			log.Info().Str("userID", userID).Uint("sessionID", existing.ID).Msg("Create: idempotency token replay, returning existing session")
			return toSessionResponse(existing), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.KindUpstream, "failed to check idempotency token", err)
		}
	}

	session := model.Session{
		UserID:         userID,
		SessionName:    req.SessionName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		ModelUsed:      req.ModelUsed,
		TokensUsed:     req.TokensUsed,
		EstimatedCost:  req.EstimatedCost,
		ClientToken:    req.ClientToken,
	}
	if len(req.LinkedinProfile) > 0 {
		if !json.Valid(req.LinkedinProfile) {
			return nil, apperr.New(apperr.KindValidation, "linkedin_profile must be valid JSON")
		}
		session.LinkedinProfile = datatypes.JSON(req.LinkedinProfile)
	}

	if err := s.sessionRepo.Create(&session); err != nil {
		// A concurrent replay of the same token loses the insert race; return
		// the winner's row instead of a duplicate error.
		if req.ClientToken != nil {
			if existing, lookupErr := s.sessionRepo.FindByUserAndToken(userID, *req.ClientToken); lookupErr == nil {
				return toSessionResponse(existing), nil
			}
		}
		log.Error().Err(err).Str("userID", userID).Msg("Create: failed to insert session")
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to create session", err)
	}

	return toSessionResponse(&session), nil
}

func (s *sessionService) List(userID string, page, limit int) (*dto.SessionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.sessionRepo.CountByUser(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to count sessions", err)
	}

	sessions, err := s.sessionRepo.FindPageByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to list sessions", err)
	}

	resp := dto.SessionListResponse{
		Sessions: make([]dto.SessionResponse, 0, len(sessions)),
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, *toSessionResponse(&sessions[i]))
	}
	return &resp, nil
}

func (s *sessionService) Get(userID string, sessionID uint) (*dto.SessionDetailResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "session %d not found", sessionID)
		}
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load session", err)
	}
	if session.UserID != userID {
		return nil, apperr.New(apperr.KindDenied, "session belongs to another user")
	}

	questions, err := s.questionRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load questions", err)
	}
	answers, err := s.answerRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load answers", err)
	}

	// Join answers under their questions by question_order. Answers with no
	// matching question are omitted, never mis-paired.
	answersByOrder := make(map[int]*model.Answer, len(answers))
	for i := range answers {
		answersByOrder[answers[i].QuestionOrder] = &answers[i]
	}

	detail := dto.SessionDetailResponse{
		Session:   *toSessionResponse(session),
		Questions: make([]dto.QuestionWithAnswerResponse, 0, len(questions)),
	}
	for _, q := range questions {
		qResp := dto.QuestionWithAnswerResponse{
			QuestionOrder:   q.QuestionOrder,
			QuestionText:    q.QuestionText,
			QuestionType:    q.QuestionType,
			DifficultyLevel: q.DifficultyLevel,
			Category:        q.Category,
			Explanation:     q.Explanation,
		}
		if a, ok := answersByOrder[q.QuestionOrder]; ok {
			qResp.Answer = toAnswerResponse(a)
		}
		detail.Questions = append(detail.Questions, qResp)
	}
	return &detail, nil
}

// Delete removes the session and all children. A missing session and a
// session owned by someone else return the same NotFound outcome so the
// endpoint does not leak existence.
func (s *sessionService) Delete(userID string, sessionID uint) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.KindNotFound, "session %d not found", sessionID)
		}
		return apperr.Wrap(apperr.KindUpstream, "failed to load session", err)
	}
	if session.UserID != userID {
		return apperr.Newf(apperr.KindNotFound, "session %d not found", sessionID)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.DeleteCascade(tx, sessionID)
	})
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("Delete: cascade failed")
		return apperr.Wrap(apperr.KindUpstream, "failed to delete session", err)
	}
	return nil
}

// AppendQuestions assigns question_order server-side, continuing the existing
// sequence under a row lock on the session. Concurrent appends serialize here
// instead of interleaving client-chosen orders.
func (s *sessionService) AppendQuestions(userID string, sessionID uint, req dto.AppendQuestionsRequest) (*dto.AppendQuestionsResponse, error) {
	var resp dto.AppendQuestionsResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByIDForUpdate(tx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.KindNotFound, "session %d not found", sessionID)
			}
			return apperr.Wrap(apperr.KindUpstream, "failed to load session", err)
		}
		if session.UserID != userID {
			return apperr.New(apperr.KindDenied, "session belongs to another user")
		}

		maxOrder, err := s.questionRepo.MaxOrder(tx, sessionID)
		if err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to determine question order", err)
		}
		if maxOrder+len(req.Questions) > maxQuestionsPerSession {
			return apperr.Newf(apperr.KindValidation,
				"a session holds at most %d questions (%d existing, %d requested)",
				maxQuestionsPerSession, maxOrder, len(req.Questions))
		}

		questions := make([]model.Question, len(req.Questions))
		orders := make([]int, len(req.Questions))
		for i, q := range req.Questions {
			order := maxOrder + i + 1
			orders[i] = order
			questions[i] = model.Question{
				SessionID:       sessionID,
				QuestionOrder:   order,
				QuestionText:    q.QuestionText,
				QuestionType:    defaultString(q.QuestionType, "general"),
				DifficultyLevel: defaultString(q.DifficultyLevel, "medium"),
				Category:        q.Category,
				Explanation:     q.Explanation,
			}
		}
		if err := s.questionRepo.CreateBatch(tx, questions); err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to append questions", err)
		}
		if err := s.sessionRepo.AddCounters(tx, sessionID, len(questions), 0); err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to update session counters", err)
		}

		resp.Count = len(questions)
		resp.Orders = orders
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AppendAnswers trusts the caller-supplied question_order values but rejects
// duplicates. An answer whose question does not exist yet is accepted; the
// read-time join simply never surfaces it.
func (s *sessionService) AppendAnswers(userID string, sessionID uint, req dto.AppendAnswersRequest) (*dto.AppendAnswersResponse, error) {
	var resp dto.AppendAnswersResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByIDForUpdate(tx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.KindNotFound, "session %d not found", sessionID)
			}
			return apperr.Wrap(apperr.KindUpstream, "failed to load session", err)
		}
		if session.UserID != userID {
			return apperr.New(apperr.KindDenied, "session belongs to another user")
		}

		existingOrders, err := s.answerRepo.OrdersBySession(tx, sessionID)
		if err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to load existing answers", err)
		}
		seen := make(map[int]bool, len(existingOrders)+len(req.Answers))
		for _, order := range existingOrders {
			seen[order] = true
		}

		answers := make([]model.Answer, len(req.Answers))
		for i, a := range req.Answers {
			if seen[a.QuestionOrder] {
				return apperr.Newf(apperr.KindValidation, "an answer for question_order %d already exists", a.QuestionOrder)
			}
			seen[a.QuestionOrder] = true

			answers[i] = model.Answer{
				SessionID:     sessionID,
				QuestionOrder: a.QuestionOrder,
				AnswerText:    a.AnswerText,
				Tips:          a.Tips,
			}
			if len(a.KeyPoints) > 0 {
				raw, marshalErr := json.Marshal(a.KeyPoints)
				if marshalErr != nil {
					return apperr.Wrap(apperr.KindUpstream, "failed to encode key points", marshalErr)
				}
				answers[i].KeyPoints = raw
			}
		}
		if err := s.answerRepo.CreateBatch(tx, answers); err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to append answers", err)
		}
		if err := s.sessionRepo.AddCounters(tx, sessionID, 0, len(answers)); err != nil {
			return apperr.Wrap(apperr.KindUpstream, "failed to update session counters", err)
		}

		resp.Count = len(answers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func toSessionResponse(session *model.Session) *dto.SessionResponse {
	var resp dto.SessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("Failed to copy session model to DTO")
	}
	if len(session.LinkedinProfile) > 0 {
		resp.LinkedinProfile = json.RawMessage(session.LinkedinProfile)
	}
	return &resp
}

func toAnswerResponse(answer *model.Answer) *dto.AnswerResponse {
	resp := dto.AnswerResponse{
		QuestionOrder: answer.QuestionOrder,
		AnswerText:    answer.AnswerText,
		Tips:          answer.Tips,
	}
	if len(answer.KeyPoints) > 0 {
		if err := json.Unmarshal(answer.KeyPoints, &resp.KeyPoints); err != nil {
			log.Warn().Err(err).Uint("answerID", answer.ID).Msg("Failed to decode key points")
		}
	}
	return &resp
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
