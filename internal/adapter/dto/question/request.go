package question

// NextQuestionRequest represents query parameters for picking a question
type NextQuestionRequest struct {
	SessionID  string `query:"session_id" validate:"required,uuid"`
	Category   string `query:"category" validate:"omitempty,oneof=general behavioral technical management situational"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Domain     string `query:"domain" validate:"omitempty,max=100"`
}

// ListQuestionsRequest represents query parameters for listing questions
type ListQuestionsRequest struct {
	Category   string `query:"category" validate:"omitempty,oneof=general behavioral technical management situational"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Domain     string `query:"domain" validate:"omitempty,max=100"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// AddQuestionRequest represents the request to add a question to the pool
type AddQuestionRequest struct {
	Text             string   `json:"text" validate:"required,min=10"`
	IdealAnswer      string   `json:"ideal_answer,omitempty"`
	Keywords         []string `json:"keywords,omitempty" validate:"omitempty,max=25,dive,min=1"`
	Category         string   `json:"category" validate:"omitempty,oneof=general behavioral technical management situational"`
	Domain           string   `json:"domain,omitempty" validate:"omitempty,max=100"`
	Difficulty       string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	TimeLimitSeconds int      `json:"time_limit_seconds" validate:"omitempty,min=30,max=600"`
}
