package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Criteria keys in report order. Anything else in the raw map is dropped.
const (
	fieldDomain          = "domain"
	fieldSubject         = "subject"
	fieldSource          = "source"
	fieldDifficultyLevel = "difficulty_level"
	fieldType            = "type"
	fieldGameFormat      = "game_format"
	fieldNumQuestions    = "num_questions"
	fieldRandomSeed      = "random_seed"
	fieldExcludeIDs      = "exclude_question_ids"
)

var knownCriteriaFields = []string{
	fieldDomain,
	fieldSubject,
	fieldSource,
	fieldDifficultyLevel,
	fieldType,
	fieldGameFormat,
	fieldNumQuestions,
	fieldRandomSeed,
	fieldExcludeIDs,
}

// CriteriaValidator turns a loose key/value record into a models.Criteria.
// It performs no I/O.
type CriteriaValidator struct {
	validate             *validator.Validate
	migrateLegacyFormats bool
}

func newCriteriaValidator(validate *validator.Validate, migrateLegacyFormats bool) *CriteriaValidator {
	return &CriteriaValidator{validate: validate, migrateLegacyFormats: migrateLegacyFormats}
}

// Validate coerces, defaults, and checks raw criteria. Unknown keys are
// stripped; every violation is reported in a single ValidationErrors.
func (cv *CriteriaValidator) Validate(raw map[string]interface{}) (*models.Criteria, error) {
	criteria := &models.Criteria{
		GameFormat:   models.DefaultGameFormat,
		NumQuestions: models.DefaultNumQuestions,
	}

	var errs ValidationErrors
	for _, field := range knownCriteriaFields {
		value, ok := raw[field]
		if !ok || value == nil {
			continue
		}
		errs = append(errs, cv.assign(criteria, field, value)...)
	}

	errs = append(errs, ToValidationErrors(cv.validate.Struct(criteria))...)
	if len(errs) > 0 {
		return nil, errs
	}

	if cv.migrateLegacyFormats {
		criteria.GameFormat, _ = LegacyGameFormatMigration(criteria.GameFormat)
	}

	return criteria, nil
}

// StrippedFields lists the keys of raw that Validate ignores.
func StrippedFields(raw map[string]interface{}) []string {
	var stripped []string
	for key := range raw {
		if !slices.Contains(knownCriteriaFields, key) {
			stripped = append(stripped, key)
		}
	}
	slices.Sort(stripped)
	return stripped
}

func (cv *CriteriaValidator) assign(c *models.Criteria, field string, value interface{}) ValidationErrors {
	switch field {
	case fieldDomain, fieldSubject, fieldSource:
		s, err := optionalString(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		switch field {
		case fieldDomain:
			c.Domain = s
		case fieldSubject:
			c.Subject = s
		default:
			c.Source = s
		}

	case fieldDifficultyLevel:
		s, err := optionalString(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		if s != nil {
			level := models.DifficultyLevel(*s)
			c.DifficultyLevel = &level
		}

	case fieldType:
		s, err := optionalString(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		if s != nil {
			qType := models.QuestionType(*s)
			c.Type = &qType
		}

	case fieldGameFormat:
		s, err := optionalString(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		if s != nil {
			c.GameFormat = models.GameFormat(*s)
		}

	case fieldNumQuestions:
		n, err := integer(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		if n < math.MinInt32 {
			return ValidationErrors{{Field: field, Message: fmt.Sprintf("must be at least %d", models.MinNumQuestions), Value: value, Rule: "min"}}
		}
		if n > math.MaxInt32 {
			return ValidationErrors{{Field: field, Message: fmt.Sprintf("must be at most %d", models.MaxNumQuestions), Value: value, Rule: "max"}}
		}
		c.NumQuestions = int(n)

	case fieldRandomSeed:
		n, err := integer(field, value)
		if err != nil {
			return ValidationErrors{*err}
		}
		c.RandomSeed = &n

	case fieldExcludeIDs:
		ids, errs := idList(field, value)
		if len(errs) > 0 {
			return errs
		}
		c.ExcludeQuestionIDs = ids
	}
	return nil
}

// optionalString trims the value; blank strings count as absent.
func optionalString(field string, value interface{}) (*string, *ValidationError) {
	s, ok := value.(string)
	if !ok {
		return nil, &ValidationError{Field: field, Message: "must be a string", Value: value, Rule: "string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

const maxExactFloat = 1 << 53

func integer(field string, value interface{}) (int64, *ValidationError) {
	invalid := &ValidationError{Field: field, Message: "must be an integer", Value: value, Rule: "integer"}

	switch n := value.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, invalid
		}
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, invalid
		}
		return int64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, invalid
		}
		// beyond 2^53 a float64 no longer holds every integer, so the value
		// the client sent may already have been rounded
		if math.Abs(n) > maxExactFloat {
			return 0, &ValidationError{Field: field, Message: "must be between -2^53 and 2^53", Value: value, Rule: "range"}
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, invalid
		}
		return i, nil
	default:
		return 0, invalid
	}
}

// idList accepts JSON arrays and Go integer slices; the result is sorted and unique.
func idList(field string, value interface{}) ([]uint, ValidationErrors) {
	var items []interface{}
	switch v := value.(type) {
	case []interface{}:
		items = v
	case []uint:
		for _, id := range v {
			items = append(items, uint64(id))
		}
	case []int:
		for _, id := range v {
			items = append(items, id)
		}
	case []int64:
		for _, id := range v {
			items = append(items, id)
		}
	default:
		return nil, ValidationErrors{{Field: field, Message: "must be a list of question ids", Value: value, Rule: "list"}}
	}

	var errs ValidationErrors
	ids := make([]uint, 0, len(items))
	for i, item := range items {
		itemField := fmt.Sprintf("%s[%d]", field, i)
		n, err := integer(itemField, item)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		if n < 1 {
			errs = append(errs, ValidationError{Field: itemField, Message: "must be a positive integer", Value: item, Rule: "min"})
			continue
		}
		ids = append(ids, uint(n))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}
