package validator

import "github.com/SAP-F-2025/quiz-selection-service/internal/models"

// retiredGameFormats were collapsed into hangman when the game catalogue was
// reduced. Kept for callers that still send the old values.
var retiredGameFormats = map[models.GameFormat]bool{
	models.GameFormatTraditional: true,
	models.GameFormatMemoryGrid:  true,
}

// LegacyGameFormatMigration rewrites a retired game format to hangman and
// reports whether a rewrite happened.
func LegacyGameFormatMigration(format models.GameFormat) (models.GameFormat, bool) {
	if retiredGameFormats[format] {
		return models.GameFormatHangman, true
	}
	return format, false
}
