package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Percula/internal/apperr"
	"github.com/lshigami/Percula/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerationService struct {
	questions *dto.GeneratedQuestionsResponse
	answer    *dto.GeneratedAnswerResponse
	profile   *dto.GeneratedProfileResponse
	err       error
}

func (s *stubGenerationService) GenerateQuestions(_ context.Context, _ dto.GenerateQuestionsRequest) (*dto.GeneratedQuestionsResponse, error) {
	return s.questions, s.err
}

func (s *stubGenerationService) GenerateAnswer(_ context.Context, _ dto.GenerateAnswerRequest) (*dto.GeneratedAnswerResponse, error) {
	return s.answer, s.err
}

func (s *stubGenerationService) GenerateFollowUpQuestions(_ context.Context, _ dto.GenerateFollowUpsRequest) (*dto.GeneratedQuestionsResponse, error) {
	return s.questions, s.err
}

func (s *stubGenerationService) GenerateLinkedInProfile(_ context.Context, _ dto.GenerateLinkedInProfileRequest) (*dto.GeneratedProfileResponse, error) {
	return s.profile, s.err
}

func newGenerationRouter(stub *stubGenerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewGenerationController(stub)

	r := gin.New()
	generate := r.Group("/generate")
	generate.POST("/questions", ctrl.GenerateQuestions)
	generate.POST("/answer", ctrl.GenerateAnswer)
	generate.POST("/follow-up-questions", ctrl.GenerateFollowUpQuestions)
	generate.POST("/linkedin-profile", ctrl.GenerateLinkedInProfile)
	return r
}

func TestGenerateQuestionsSuccess(t *testing.T) {
	stub := &stubGenerationService{
		questions: &dto.GeneratedQuestionsResponse{
			Questions: []dto.GeneratedQuestion{
				{QuestionText: "Why Go?", QuestionType: "technical", DifficultyLevel: "easy"},
			},
			Usage:     dto.UsageResponse{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
			Recovered: true,
		},
	}
	router := newGenerationRouter(stub)

	rec := doJSON(t, router, http.MethodPost, "/generate/questions", "", map[string]any{
		"job_title":       "Backend Engineer",
		"job_description": "Go services",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GeneratedQuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Why Go?", resp.Questions[0].QuestionText)
	assert.True(t, resp.Recovered)
	assert.EqualValues(t, 30, resp.Usage.TotalTokens)
}

func TestGenerateQuestionsValidation(t *testing.T) {
	router := newGenerationRouter(&stubGenerationService{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing job_description", map[string]any{"job_title": "SRE"}},
		{"bad question_type", map[string]any{"job_title": "SRE", "job_description": "x", "question_type": "trivia"}},
		{"count over cap", map[string]any{"job_title": "SRE", "job_description": "x", "count": 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/generate/questions", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerateUpstreamFailureMapsTo500(t *testing.T) {
	stub := &stubGenerationService{
		err: apperr.New(apperr.KindUpstream, "model output contained no usable questions"),
	}
	router := newGenerationRouter(stub)

	rec := doJSON(t, router, http.MethodPost, "/generate/questions", "", map[string]any{
		"job_title":       "SRE",
		"job_description": "on-call",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "model output contained no usable questions", body.Error)
}

func TestGenerateAnswerSuccess(t *testing.T) {
	stub := &stubGenerationService{
		answer: &dto.GeneratedAnswerResponse{
			Answer: dto.GeneratedAnswer{AnswerText: "Lead with the outcome.", KeyPoints: []string{"context", "result"}},
		},
	}
	router := newGenerationRouter(stub)

	rec := doJSON(t, router, http.MethodPost, "/generate/answer", "", map[string]any{
		"job_title": "PM",
		"question":  "Tell me about a launch.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GeneratedAnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lead with the outcome.", resp.Answer.AnswerText)
	assert.False(t, resp.Recovered)
}

func TestGenerateLinkedInProfileSuccess(t *testing.T) {
	stub := &stubGenerationService{
		profile: &dto.GeneratedProfileResponse{
			Profile: dto.GeneratedProfile{Headline: "Builder of reliable systems", Summary: "Ten years of infra."},
		},
	}
	router := newGenerationRouter(stub)

	rec := doJSON(t, router, http.MethodPost, "/generate/linkedin-profile", "", map[string]any{
		"job_title":       "SRE",
		"job_description": "reliability",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GeneratedProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Builder of reliable systems", resp.Profile.Headline)
}
