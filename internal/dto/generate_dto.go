package dto

type GenerateQuestionsRequest struct {
	JobTitle        string `json:"job_title" binding:"required"`
	JobDescription  string `json:"job_description" binding:"required"`
	QuestionType    string `json:"question_type" binding:"omitempty,oneof=technical behavioral situational general"`
	DifficultyLevel string `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
	Count           int    `json:"count" binding:"omitempty,min=1,max=20"`
	Model           string `json:"model"`
}

type GenerateAnswerRequest struct {
	JobTitle        string `json:"job_title" binding:"required"`
	Question        string `json:"question" binding:"required"`
	QuestionType    string `json:"question_type" binding:"omitempty,oneof=technical behavioral situational general"`
	DifficultyLevel string `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
	Model           string `json:"model"`
}

type GenerateFollowUpsRequest struct {
	JobTitle string `json:"job_title" binding:"required"`
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
	Count    int    `json:"count" binding:"omitempty,min=1,max=10"`
	Model    string `json:"model"`
}

type GenerateLinkedInProfileRequest struct {
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	Highlights     string `json:"highlights"`
	Model          string `json:"model"`
}

type GeneratedQuestion struct {
	QuestionText    string `json:"question_text"`
	QuestionType    string `json:"question_type"`
	DifficultyLevel string `json:"difficulty_level"`
	Category        string `json:"category,omitempty"`
	Explanation     string `json:"explanation,omitempty"`
}

type GeneratedAnswer struct {
	AnswerText string   `json:"answer_text"`
	KeyPoints  []string `json:"key_points,omitempty"`
	Tips       string   `json:"tips,omitempty"`
}

type GeneratedProfile struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Skills   []string `json:"skills,omitempty"`
}

// UsageResponse echoes the token accounting reported by the LLM backend.
type UsageResponse struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CompletionTokens int32 `json:"completion_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}

// Recovered is true when the completion did not parse strictly and the
// response was rebuilt through fallback extraction.
type GeneratedQuestionsResponse struct {
	Questions []GeneratedQuestion `json:"questions"`
	Usage     UsageResponse       `json:"usage"`
	Recovered bool                `json:"recovered"`
}

type GeneratedAnswerResponse struct {
	Answer    GeneratedAnswer `json:"answer"`
	Usage     UsageResponse   `json:"usage"`
	Recovered bool            `json:"recovered"`
}

type GeneratedProfileResponse struct {
	Profile   GeneratedProfile `json:"profile"`
	Usage     UsageResponse    `json:"usage"`
	Recovered bool             `json:"recovered"`
}
