package services

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// fakeStore is an in-memory bank shared by the fake repositories
type fakeStore struct {
	mu        sync.Mutex
	questions []*models.Question
	quizzes   map[uint]*models.Quiz
	links     map[uint][]*models.QuizQuestion
	attempts  map[uint]*models.QuizAttempt
	users     map[string]*models.User
	nextID    uint

	countCalls  int
	lockedReads int
	createLinks func([]*models.QuizQuestion) error
}

func newFakeStore(questions ...*models.Question) *fakeStore {
	return &fakeStore{
		questions: questions,
		quizzes:   make(map[uint]*models.Quiz),
		links:     make(map[uint][]*models.QuizQuestion),
		attempts:  make(map[uint]*models.QuizAttempt),
		users:     make(map[string]*models.User),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

// fakeRepository implements repositories.Repository over a fakeStore
type fakeRepository struct {
	store *fakeStore
}

func newFakeRepository(questions ...*models.Question) *fakeRepository {
	return &fakeRepository{store: newFakeStore(questions...)}
}

func (r *fakeRepository) Question() repositories.QuestionRepository { return &fakeQuestions{r.store} }
func (r *fakeRepository) Quiz() repositories.QuizRepository         { return &fakeQuizzes{r.store} }
func (r *fakeRepository) Attempt() repositories.AttemptRepository   { return &fakeAttempts{r.store} }
func (r *fakeRepository) User() repositories.UserRepository         { return &fakeUsers{r.store} }
func (r *fakeRepository) Ping(ctx context.Context) error            { return nil }
func (r *fakeRepository) Close() error                              { return nil }

// WithTransaction restores the quiz and attempt tables when fn fails
func (r *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	r.store.mu.Lock()
	quizzes := cloneMap(r.store.quizzes)
	links := cloneMap(r.store.links)
	attempts := make(map[uint]*models.QuizAttempt, len(r.store.attempts))
	for id, a := range r.store.attempts {
		copied := *a
		copied.SelectedQuestions = slices.Clone(a.SelectedQuestions)
		attempts[id] = &copied
	}
	r.store.mu.Unlock()

	if err := fn(r); err != nil {
		r.store.mu.Lock()
		r.store.quizzes, r.store.links, r.store.attempts = quizzes, links, attempts
		r.store.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type fakeQuestions struct{ store *fakeStore }

func (f *fakeQuestions) matching(filters repositories.QuestionFilters) []*models.Question {
	var out []*models.Question
	for _, q := range f.store.questions {
		if filters.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

func (f *fakeQuestions) Count(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.countCalls++
	return int64(len(f.matching(filters))), nil
}

func (f *fakeQuestions) SelectRandom(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters, limit int) ([]*models.Question, error) {
	all, _ := f.SelectAll(ctx, tx, filters)
	if limit <= 0 {
		return []*models.Question{}, nil
	}
	return all[:min(limit, len(all))], nil
}

func (f *fakeQuestions) SelectAll(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) ([]*models.Question, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := f.matching(filters)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

func (f *fakeQuestions) ByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Question, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := make(map[uint]*models.Question, len(ids))
	for _, q := range f.store.questions {
		if slices.Contains(ids, q.ID) {
			out[q.ID] = q
		}
	}
	return out, nil
}

func (f *fakeQuestions) ListAvailable(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) ([]*models.Question, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := f.matching(filters)
	slices.SortFunc(out, func(a, b *models.Question) int { return int(a.ID) - int(b.ID) })
	return out, nil
}

func (f *fakeQuestions) CountBank(ctx context.Context, tx *gorm.DB) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.matching(repositories.QuestionFilters{}))), nil
}

func (f *fakeQuestions) CriteriaStats(ctx context.Context, tx *gorm.DB) ([]models.CriteriaStat, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var stats []models.CriteriaStat
	for _, q := range f.matching(repositories.QuestionFilters{}) {
		idx := slices.IndexFunc(stats, func(s models.CriteriaStat) bool {
			return s.Domain == q.Domain && s.Subject == q.Subject && s.Source == q.Source && s.DifficultyLevel == q.DifficultyLevel
		})
		if idx < 0 {
			stats = append(stats, models.CriteriaStat{Domain: q.Domain, Subject: q.Subject, Source: q.Source, DifficultyLevel: q.DifficultyLevel})
			idx = len(stats) - 1
		}
		stats[idx].Count++
	}
	return stats, nil
}

type fakeQuizzes struct{ store *fakeStore }

func (f *fakeQuizzes) Create(ctx context.Context, tx *gorm.DB, quiz *models.Quiz) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	quiz.ID = f.store.id()
	copied := *quiz
	f.store.quizzes[quiz.ID] = &copied
	return nil
}

func (f *fakeQuizzes) CreateQuestions(ctx context.Context, tx *gorm.DB, associations []*models.QuizQuestion) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.createLinks != nil {
		if err := f.store.createLinks(associations); err != nil {
			return err
		}
	}
	for _, assoc := range associations {
		assoc.ID = f.store.id()
		copied := *assoc
		f.store.links[assoc.QuizID] = append(f.store.links[assoc.QuizID], &copied)
	}
	return nil
}

func (f *fakeQuizzes) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Quiz, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	quiz, ok := f.store.quizzes[id]
	if !ok {
		return nil, repositories.NotFound("quiz", id)
	}
	copied := *quiz
	return &copied, nil
}

func (f *fakeQuizzes) GetQuestions(ctx context.Context, tx *gorm.DB, quizID uint) ([]*models.QuizQuestion, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := slices.Clone(f.store.links[quizID])
	slices.SortFunc(out, func(a, b *models.QuizQuestion) int { return a.QuestionNumber - b.QuestionNumber })
	return out, nil
}

func (f *fakeQuizzes) Deactivate(ctx context.Context, tx *gorm.DB, id uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	quiz, ok := f.store.quizzes[id]
	if !ok {
		return repositories.NotFound("quiz", id)
	}
	quiz.IsActive = false
	return nil
}

type fakeAttempts struct{ store *fakeStore }

func (f *fakeAttempts) Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	attempt.ID = f.store.id()
	copied := *attempt
	copied.SelectedQuestions = slices.Clone(attempt.SelectedQuestions)
	f.store.attempts[attempt.ID] = &copied
	return nil
}

func (f *fakeAttempts) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	attempt, ok := f.store.attempts[id]
	if !ok {
		return nil, repositories.NotFound("attempt", id)
	}
	copied := *attempt
	copied.SelectedQuestions = slices.Clone(attempt.SelectedQuestions)
	return &copied, nil
}

func (f *fakeAttempts) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error) {
	f.store.mu.Lock()
	f.store.lockedReads++
	f.store.mu.Unlock()
	return f.GetByID(ctx, tx, id)
}

func (f *fakeAttempts) AppendSelectedQuestions(ctx context.Context, tx *gorm.DB, id uint, questionIDs []uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	attempt, ok := f.store.attempts[id]
	if !ok {
		return repositories.NotFound("attempt", id)
	}
	attempt.SelectedQuestions = append(attempt.SelectedQuestions, questionIDs...)
	return nil
}

type fakeUsers struct{ store *fakeStore }

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user, ok := f.store.users[id]
	if !ok {
		return nil, repositories.NotFound("user", id)
	}
	return user, nil
}

func (f *fakeUsers) HasRole(ctx context.Context, id string, role models.UserRole) (bool, error) {
	user, err := f.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

// ===== FIXTURES =====

// bankQuestion builds a bank question; fields left empty match nothing specific
func bankQuestion(id uint, domain, subject, source string, level models.DifficultyLevel, qType models.QuestionType) *models.Question {
	return &models.Question{
		ID:              id,
		Domain:          domain,
		Subject:         subject,
		Source:          source,
		DifficultyLevel: level,
		Type:            qType,
		QuestionText:    "question text",
	}
}

// uniformBank returns n multiple choice questions in one domain/subject/source/level
func uniformBank(n int, domain, subject, source string, level models.DifficultyLevel) []*models.Question {
	out := make([]*models.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, bankQuestion(uint(i), domain, subject, source, level, models.MultipleChoice))
	}
	return out
}

func questionIDs(questions []*models.Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
