package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Percula/config"
	"github.com/lshigami/Percula/internal/apperr"
	"github.com/lshigami/Percula/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultQuestionCount = 5

// GenerationService turns sanitized prompts into structured interview-prep
// content, tolerating a text-generation backend that does not guarantee
// well-formed output.
type GenerationService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GeneratedQuestionsResponse, error)
	GenerateAnswer(ctx context.Context, req dto.GenerateAnswerRequest) (*dto.GeneratedAnswerResponse, error)
	GenerateFollowUpQuestions(ctx context.Context, req dto.GenerateFollowUpsRequest) (*dto.GeneratedQuestionsResponse, error)
	GenerateLinkedInProfile(ctx context.Context, req dto.GenerateLinkedInProfileRequest) (*dto.GeneratedProfileResponse, error)
}

type geminiGenerationService struct {
	client *genai.Client
	cfg    *config.Config
}

func NewGenerationService(cfg *config.Config) (GenerationService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GenerationService will be non-functional.")
		return &geminiGenerationService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiGenerationService{client: client, cfg: cfg}, nil
}

// complete runs one prompt against the requested model and returns the raw
// completion text plus token usage. Every call carries a timeout so a hung
// backend cannot block the request forever.
func (s *geminiGenerationService) complete(ctx context.Context, modelName, prompt string) (string, dto.UsageResponse, error) {
	var usage dto.UsageResponse
	if s.client == nil {
		return "", usage, apperr.New(apperr.KindUpstream, "generation backend is not configured")
	}
	if modelName == "" {
		modelName = s.cfg.LLM.DefaultModel
	}

	timeout := time.Duration(s.cfg.LLM.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model := s.client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Msg("Gemini API error")
		return "", usage, apperr.Wrap(apperr.KindUpstream, "generation backend request failed", err)
	}

	if resp.UsageMetadata != nil {
		usage.PromptTokens = resp.UsageMetadata.PromptTokenCount
		usage.CompletionTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Str("model", modelName).Msg("Gemini returned no candidates or parts")
		return "", usage, apperr.New(apperr.KindUpstream, "generation backend returned no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", usage, apperr.New(apperr.KindUpstream, "generation backend returned no text content")
	}
	return b.String(), usage, nil
}

func (s *geminiGenerationService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GeneratedQuestionsResponse, error) {
	count := req.Count
	if count <= 0 {
		count = defaultQuestionCount
	}
	prompt := questionsPrompt(req.JobTitle, req.JobDescription, req.QuestionType, req.DifficultyLevel, count)

	raw, usage, err := s.complete(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}

	questions, outcome, err := decodeQuestions(raw)
	if err != nil {
		log.Warn().Str("raw", raw).Msg("GenerateQuestions: completion unusable even after fallback extraction")
		return nil, err
	}
	normalizeQuestions(questions, req.QuestionType, req.DifficultyLevel)

	return &dto.GeneratedQuestionsResponse{
		Questions: questions,
		Usage:     usage,
		Recovered: outcome == ParseOutcomeRecovered,
	}, nil
}

func (s *geminiGenerationService) GenerateAnswer(ctx context.Context, req dto.GenerateAnswerRequest) (*dto.GeneratedAnswerResponse, error) {
	prompt := answerPrompt(req.JobTitle, req.Question, req.QuestionType, req.DifficultyLevel)

	raw, usage, err := s.complete(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}

	var answer dto.GeneratedAnswer
	outcome, decodeErr := decodeCompletion(raw, &answer)
	if decodeErr != nil || answer.AnswerText == "" {
		answer, outcome = recoverAnswer(raw)
		if answer.AnswerText == "" {
			log.Warn().Str("raw", raw).Msg("GenerateAnswer: completion unusable even after fallback extraction")
			return nil, apperr.New(apperr.KindUpstream, "model output could not be parsed as an answer")
		}
	}

	return &dto.GeneratedAnswerResponse{
		Answer:    answer,
		Usage:     usage,
		Recovered: outcome == ParseOutcomeRecovered,
	}, nil
}

func (s *geminiGenerationService) GenerateFollowUpQuestions(ctx context.Context, req dto.GenerateFollowUpsRequest) (*dto.GeneratedQuestionsResponse, error) {
	count := req.Count
	if count <= 0 {
		count = 3
	}
	prompt := followUpsPrompt(req.JobTitle, req.Question, req.Answer, count)

	raw, usage, err := s.complete(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}

	questions, outcome, err := decodeQuestions(raw)
	if err != nil {
		log.Warn().Str("raw", raw).Msg("GenerateFollowUpQuestions: completion unusable even after fallback extraction")
		return nil, err
	}
	normalizeQuestions(questions, "", "")

	return &dto.GeneratedQuestionsResponse{
		Questions: questions,
		Usage:     usage,
		Recovered: outcome == ParseOutcomeRecovered,
	}, nil
}

func (s *geminiGenerationService) GenerateLinkedInProfile(ctx context.Context, req dto.GenerateLinkedInProfileRequest) (*dto.GeneratedProfileResponse, error) {
	prompt := linkedInPrompt(req.JobTitle, req.JobDescription, req.Highlights)

	raw, usage, err := s.complete(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}

	var profile dto.GeneratedProfile
	outcome, decodeErr := decodeCompletion(raw, &profile)
	if decodeErr != nil || (profile.Headline == "" && profile.Summary == "") {
		profile, outcome = recoverProfile(raw)
		if profile.Headline == "" && profile.Summary == "" {
			log.Warn().Str("raw", raw).Msg("GenerateLinkedInProfile: completion unusable even after fallback extraction")
			return nil, apperr.New(apperr.KindUpstream, "model output could not be parsed as a profile")
		}
	}

	return &dto.GeneratedProfileResponse{
		Profile:   profile,
		Usage:     usage,
		Recovered: outcome == ParseOutcomeRecovered,
	}, nil
}

// questionsPayload matches the schema the prompts request. decodeQuestions
// additionally accepts a bare top-level array and, failing that, rebuilds
// minimal records from any question_text fields found in the raw text.
type questionsPayload struct {
	Questions []dto.GeneratedQuestion `json:"questions"`
}

func decodeQuestions(raw string) ([]dto.GeneratedQuestion, ParseOutcome, error) {
	var payload questionsPayload
	outcome, err := decodeCompletion(raw, &payload)
	if err == nil && len(payload.Questions) > 0 {
		return payload.Questions, outcome, nil
	}

	var bare []dto.GeneratedQuestion
	if outcome, err = decodeCompletion(raw, &bare); err == nil && len(bare) > 0 {
		return bare, ParseOutcomeRecovered, nil
	}

	texts := recoverStringFields(raw, questionTextRe)
	if len(texts) == 0 {
		return nil, ParseOutcomeFailed, apperr.New(apperr.KindUpstream, "model output contained no usable questions")
	}
	questions := make([]dto.GeneratedQuestion, len(texts))
	for i, text := range texts {
		questions[i] = dto.GeneratedQuestion{QuestionText: text}
	}
	return questions, ParseOutcomeRecovered, nil
}

func recoverAnswer(raw string) (dto.GeneratedAnswer, ParseOutcome) {
	if texts := recoverStringFields(raw, answerTextRe); len(texts) > 0 {
		return dto.GeneratedAnswer{AnswerText: texts[0]}, ParseOutcomeRecovered
	}
	trimmed := strings.TrimSpace(raw)
	// Prose with no JSON skeleton at all is still a usable answer; a mangled
	// JSON fragment is not.
	if trimmed != "" && !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return dto.GeneratedAnswer{AnswerText: trimmed}, ParseOutcomeRecovered
	}
	return dto.GeneratedAnswer{}, ParseOutcomeFailed
}

func recoverProfile(raw string) (dto.GeneratedProfile, ParseOutcome) {
	var profile dto.GeneratedProfile
	if headlines := recoverStringFields(raw, headlineRe); len(headlines) > 0 {
		profile.Headline = headlines[0]
	}
	if summaries := recoverStringFields(raw, summaryRe); len(summaries) > 0 {
		profile.Summary = summaries[0]
	}
	if profile.Headline == "" && profile.Summary == "" {
		return profile, ParseOutcomeFailed
	}
	return profile, ParseOutcomeRecovered
}

func normalizeQuestions(questions []dto.GeneratedQuestion, questionType, difficulty string) {
	for i := range questions {
		if questions[i].QuestionType == "" {
			if questionType != "" {
				questions[i].QuestionType = questionType
			} else {
				questions[i].QuestionType = "general"
			}
		}
		if questions[i].DifficultyLevel == "" {
			if difficulty != "" {
				questions[i].DifficultyLevel = difficulty
			} else {
				questions[i].DifficultyLevel = "medium"
			}
		}
	}
}
