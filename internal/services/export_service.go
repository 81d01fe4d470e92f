package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const (
	statsSheet     = "Criteria Stats"
	quizSheet      = "Quiz"
	questionsSheet = "Questions"
)

type exportService struct {
	selection SelectionService
	quizzes   QuizService
	logger    *slog.Logger
}

func NewExportService(selection SelectionService, quizzes QuizService, logger *slog.Logger) ExportService {
	return &exportService{
		selection: selection,
		quizzes:   quizzes,
		logger:    logger,
	}
}

// ExportCriteriaStats writes the criteria listing as a single-sheet workbook
func (s *exportService) ExportCriteriaStats(ctx context.Context) ([]byte, error) {
	stats, err := s.selection.GetCriteriaStats(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{{"Domain", "Subject", "Source", "Difficulty", "Questions"}}
	for _, stat := range stats {
		rows = append(rows, []interface{}{stat.Domain, stat.Subject, stat.Source, string(stat.DifficultyLevel), stat.Count})
	}
	if err := writeRows(f, statsSheet, 1, rows); err != nil {
		return nil, err
	}
	if err := boldRow(f, statsSheet, 1); err != nil {
		return nil, err
	}

	s.logger.Info("Criteria stats exported", "rows", len(stats))
	return workbookBytes(f)
}

// ExportQuiz writes the quiz summary and its questions in presentation order
func (s *exportService) ExportQuiz(ctx context.Context, quizID uint) ([]byte, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quizSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Title", quiz.Title},
		{"Description", quiz.Description},
		{"Game format", string(quiz.GameFormat)},
		{"Game options", string(quiz.GameOptions)},
		{"Questions", quiz.QuestionCount},
		{"Active", quiz.IsActive},
		{"Created by", quiz.CreatedBy},
	}
	if quiz.RandomSeed != nil {
		summary = append(summary, []interface{}{"Random seed", *quiz.RandomSeed})
	}
	if err := writeRows(f, quizSheet, 1, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(questionsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	rows := [][]interface{}{{"#", "Question ID", "Domain", "Subject", "Source", "Difficulty", "Type", "Question"}}
	for i, q := range quiz.OrderedQuestions {
		rows = append(rows, []interface{}{i + 1, q.ID, q.Domain, q.Subject, q.Source, string(q.DifficultyLevel), string(q.Type), q.QuestionText})
	}
	if err := writeRows(f, questionsSheet, 1, rows); err != nil {
		return nil, err
	}
	if err := boldRow(f, questionsSheet, 1); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz exported", "quiz_id", quizID, "questions", len(quiz.OrderedQuestions))
	return workbookBytes(f)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", startRow+i, err)
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, row, row, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
