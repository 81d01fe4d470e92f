package models

// Criteria arrive as loose maps so unknown keys can be dropped instead of
// rejected; CriteriaValidator turns them into a Criteria.

type SelectQuestionsRequest struct {
	Criteria   map[string]interface{} `json:"criteria"`
	Count      *int                   `json:"count"`
	ExcludeIDs []uint                 `json:"exclude_ids"`
}

type PreviewSelectionRequest struct {
	Criteria map[string]interface{} `json:"criteria"`
	Limit    int                    `json:"limit"`
}

type GenerateQuizRequest struct {
	Criteria    map[string]interface{} `json:"criteria"`
	Title       *string                `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description" validate:"omitempty,max=1000"`
}

type ValidateUniquenessRequest struct {
	Selected  []uint `json:"selected" binding:"required"`
	AttemptID *uint  `json:"attempt_id"`
}

type StartAttemptRequest struct {
	QuizID uint `json:"quiz_id" binding:"required"`
}

type RecordAttemptQuestionsRequest struct {
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1"`
}

// QuizResponse carries a quiz with its questions in presentation order.
type QuizResponse struct {
	*Quiz
	OrderedQuestions []*Question `json:"ordered_questions"`
}
