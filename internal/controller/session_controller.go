package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Percula/internal/dto"
	"github.com/lshigami/Percula/internal/middleware"
	"github.com/lshigami/Percula/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary Create a new prep session
// @Description Creates a session for the authenticated user. Pass a server-issued client_token to make the call idempotent across retries and tabs.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.SessionCreateRequest true "Session fields"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.SessionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	session, err := c.sessionService.Create(userID, req)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CreateSession: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// IssueToken godoc
// @Summary Issue an idempotency token for session creation
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/token [post]
func (c *SessionController) IssueToken(ctx *gin.Context) {
	ctx.JSON(http.StatusCreated, c.sessionService.IssueToken())
}

// ListSessions godoc
// @Summary List the caller's sessions
// @Description Newest first, offset paginated. limit defaults to 10, max 50.
// @Tags Sessions
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SessionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	resp, err := c.sessionService.List(userID, page, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListSessions: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSession godoc
// @Summary Get one session with its questions and joined answers
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.SessionDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Owned by another user"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	detail, err := c.sessionService.Get(userID, sessionID)
	if err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Str("userID", userID).Msg("GetSession: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteSession godoc
// @Summary Delete a session and all of its questions and answers
// @Description Deleting a missing session and deleting someone else's session return the same 404.
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]any
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	if err := c.sessionService.Delete(userID, sessionID); err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Str("userID", userID).Msg("DeleteSession: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}

// AppendQuestions godoc
// @Summary Append questions to a session
// @Description question_order is assigned by the store, continuing the existing sequence. The response returns the assigned orders.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param questions body dto.AppendQuestionsRequest true "Questions to append"
// @Success 200 {object} dto.AppendQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Owned by another user"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id}/questions [post]
func (c *SessionController) AppendQuestions(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req dto.AppendQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.sessionService.AppendQuestions(userID, sessionID, req)
	if err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Str("userID", userID).Msg("AppendQuestions: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AppendAnswers godoc
// @Summary Append answers to a session
// @Description Answers carry the question_order returned by the questions append. Duplicate orders are rejected; orders without a question yet are accepted and surface once the question exists.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param answers body dto.AppendAnswersRequest true "Answers to append"
// @Success 200 {object} dto.AppendAnswersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Owned by another user"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id}/answers [post]
func (c *SessionController) AppendAnswers(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req dto.AppendAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.sessionService.AppendAnswers(userID, sessionID, req)
	if err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Str("userID", userID).Msg("AppendAnswers: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseSessionID(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return 0, false
	}
	return uint(id), true
}
