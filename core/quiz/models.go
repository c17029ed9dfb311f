package quiz

import "errors"

var (
	// errors
	ErrNotFound             = errors.New("quiz not found")
	ErrIncompleteSubmission = errors.New("every question must be answered before scoring")
	ErrAnswerOutOfRange     = errors.New("answer does not match any option")
)

// Classification bands; purely presentational, never a stored grade.
const (
	BandExcellent   = "excellent"
	BandPass        = "pass"
	BandNeedsReview = "needs review"
)

type (
	// Question is one multiple-choice item. Option order is significant and
	// preserved for display; Correct is the zero-based correct-option index.
	Question struct {
		Text        string   `json:"question"`
		Options     []string `json:"options"`
		Correct     int      `json:"-"`
		Explanation string   `json:"-"`
	}

	Quiz struct {
		ID        string     `json:"id"`
		Title     string     `json:"title"`
		Questions []Question `json:"questions"`
	}

	QuestionResult struct {
		Correct       bool   `json:"correct"`
		Answer        int    `json:"answer"`
		CorrectAnswer int    `json:"correct_answer"`
		Explanation   string `json:"explanation"`
	}

	// Result is the outcome of a single accepted submission; ephemeral.
	Result struct {
		QuizID    string           `json:"quiz_id"`
		Questions []QuestionResult `json:"questions"`
		Correct   int              `json:"correct"`
		Total     int              `json:"total"`
		Percent   float64          `json:"percent"`
	}
)

// Band classifies the percentage for display.
func (res Result) Band() string {
	switch {
	case res.Percent >= 80:
		return BandExcellent
	case res.Percent >= 60:
		return BandPass
	default:
		return BandNeedsReview
	}
}

// AttemptCounter tracks accepted submissions per quiz for one session.
// Incremented once per accepted (complete) submission, independent of score.
type AttemptCounter map[string]int

func NewAttemptCounter() AttemptCounter { return make(AttemptCounter) }

func (ac AttemptCounter) Increment(quizID string) { ac[quizID]++ }

func (ac AttemptCounter) Count(quizID string) int { return ac[quizID] }
