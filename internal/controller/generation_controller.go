package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Percula/internal/dto"
	"github.com/lshigami/Percula/internal/service"
	"github.com/rs/zerolog/log"
)

type GenerationController struct {
	generationService service.GenerationService
}

func NewGenerationController(generationService service.GenerationService) *GenerationController {
	return &GenerationController{generationService: generationService}
}

// GenerateQuestions godoc
// @Summary Generate interview questions for a job description
// @Description recovered=true in the response means the model output did not parse strictly and was rebuilt through fallback extraction.
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Job context"
// @Success 200 {object} dto.GeneratedQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Backend failed or output unusable"
// @Security BearerAuth
// @Router /generate/questions [post]
func (c *GenerationController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.generationService.GenerateQuestions(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("GenerateQuestions: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GenerateAnswer godoc
// @Summary Generate a sample answer for one interview question
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateAnswerRequest true "Question context"
// @Success 200 {object} dto.GeneratedAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate/answer [post]
func (c *GenerationController) GenerateAnswer(ctx *gin.Context) {
	var req dto.GenerateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.generationService.GenerateAnswer(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("GenerateAnswer: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GenerateFollowUpQuestions godoc
// @Summary Generate follow-up questions for a question/answer pair
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateFollowUpsRequest true "Question and optional answer"
// @Success 200 {object} dto.GeneratedQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate/follow-up-questions [post]
func (c *GenerationController) GenerateFollowUpQuestions(ctx *gin.Context) {
	var req dto.GenerateFollowUpsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.generationService.GenerateFollowUpQuestions(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("GenerateFollowUpQuestions: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GenerateLinkedInProfile godoc
// @Summary Generate a LinkedIn profile blurb targeting a job description
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateLinkedInProfileRequest true "Job context and candidate highlights"
// @Success 200 {object} dto.GeneratedProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate/linkedin-profile [post]
func (c *GenerationController) GenerateLinkedInProfile(ctx *gin.Context) {
	var req dto.GenerateLinkedInProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	resp, err := c.generationService.GenerateLinkedInProfile(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("GenerateLinkedInProfile: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
