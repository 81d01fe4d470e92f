package models

// SelectionResult is an ordered pick from the bank. Order is presentation order.
type SelectionResult struct {
	Questions     []*Question `json:"questions"`
	CriteriaUsed  *Criteria   `json:"criteria_used"`
	TotalMatching int64       `json:"total_matching"`
	IsFallback    bool        `json:"is_fallback"`
	FallbackStep  string      `json:"fallback_step,omitempty"`
}

// QuestionIDs returns the selected ids in presentation order.
func (r *SelectionResult) QuestionIDs() []uint {
	ids := make([]uint, 0, len(r.Questions))
	for _, q := range r.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

type PreviewResult struct {
	TotalMatching   int64       `json:"total_matching"`
	SampleQuestions []*Question `json:"sample_questions"`
	Criteria        *Criteria   `json:"criteria"`
}

type UniquenessResult struct {
	IsValid    bool   `json:"is_valid"`
	Duplicates []uint `json:"duplicates"`
}

// CriteriaStat is one bucket of the admin-facing option listing.
type CriteriaStat struct {
	Domain          string          `json:"domain"`
	Subject         string          `json:"subject"`
	Source          string          `json:"source"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level"`
	Count           int64           `json:"count"`
}
