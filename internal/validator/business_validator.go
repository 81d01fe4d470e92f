package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator bundles the struct validator with the criteria validator
type Validator struct {
	validate *validator.Validate
	criteria *CriteriaValidator
}

// Config toggles optional validation behaviour
type Config struct {
	// MigrateLegacyFormats rewrites traditional and memory_grid to hangman.
	MigrateLegacyFormats bool
}

// DefaultConfig keeps the legacy game-format migration on.
func DefaultConfig() Config {
	return Config{MigrateLegacyFormats: true}
}

// New creates a validator with the default configuration
func New() *Validator {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a validator with custom rules registered
func NewWithConfig(cfg Config) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	registerBusinessRules(validate)

	v := &Validator{validate: validate}
	v.criteria = newCriteriaValidator(validate, cfg.MigrateLegacyFormats)
	return v
}

// Struct validates any tagged struct
func (v *Validator) Struct(s interface{}) ValidationErrors {
	return ToValidationErrors(v.validate.Struct(s))
}

// Criteria returns the criteria validator
func (v *Validator) Criteria() *CriteriaValidator {
	return v.criteria
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// registerBusinessRules registers the closed enums used by selection criteria
func registerBusinessRules(validate *validator.Validate) {
	// difficulty level validation
	validate.RegisterValidation("difficulty_level", func(fl validator.FieldLevel) bool {
		level := models.DifficultyLevel(fl.Field().String())
		for _, vl := range models.DifficultyLevels {
			if level == vl {
				return true
			}
		}
		return false
	})

	// question type validation
	validate.RegisterValidation("question_type", func(fl validator.FieldLevel) bool {
		qType := models.QuestionType(fl.Field().String())
		for _, vt := range models.QuestionTypes {
			if qType == vt {
				return true
			}
		}
		return false
	})

	// game format validation
	validate.RegisterValidation("game_format", func(fl validator.FieldLevel) bool {
		format := models.GameFormat(fl.Field().String())
		for _, gf := range models.GameFormats {
			if format == gf {
				return true
			}
		}
		return false
	})
}

func questionTypeValues() []string {
	values := make([]string, 0, len(models.QuestionTypes))
	for _, t := range models.QuestionTypes {
		values = append(values, string(t))
	}
	return values
}

func gameFormatValues() []string {
	values := make([]string, 0, len(models.GameFormats))
	for _, f := range models.GameFormats {
		values = append(values, string(f))
	}
	return values
}
