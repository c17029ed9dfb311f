package quiz

// Service holds the immutable quiz bank and scores submissions.
type Service struct {
	ids     []string // bank order
	quizzes map[string]Quiz
}

func NewService(quizzes ...Quiz) *Service {
	svc := &Service{
		ids:     make([]string, 0, len(quizzes)),
		quizzes: make(map[string]Quiz, len(quizzes)),
	}
	for _, qz := range quizzes {
		if _, ok := svc.quizzes[qz.ID]; !ok {
			svc.ids = append(svc.ids, qz.ID)
		}
		svc.quizzes[qz.ID] = qz
	}
	return svc
}

func (svc *Service) Get(quizID string) (Quiz, error) {
	qz, ok := svc.quizzes[quizID]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return qz, nil
}

// All returns the quizzes in bank order.
func (svc *Service) All() []Quiz {
	all := make([]Quiz, 0, len(svc.ids))
	for _, id := range svc.ids {
		all = append(all, svc.quizzes[id])
	}
	return all
}

// Score grades a submitted answer set. The submission must carry an in-range
// answer for every question; anything less is rejected whole, never partially
// scored. answers[i] < 0 marks question i as unanswered.
func (svc *Service) Score(quizID string, answers []int) (Result, error) {
	qz, err := svc.Get(quizID)
	if err != nil {
		return Result{}, err
	}
	if len(answers) != len(qz.Questions) {
		return Result{}, ErrIncompleteSubmission
	}
	for i, answer := range answers {
		if answer < 0 {
			return Result{}, ErrIncompleteSubmission
		}
		if answer >= len(qz.Questions[i].Options) {
			return Result{}, ErrAnswerOutOfRange
		}
	}

	res := Result{
		QuizID:    qz.ID,
		Questions: make([]QuestionResult, 0, len(qz.Questions)),
		Total:     len(qz.Questions),
	}
	for i, question := range qz.Questions {
		correct := answers[i] == question.Correct
		if correct {
			res.Correct++
		}
		res.Questions = append(res.Questions, QuestionResult{
			Correct:       correct,
			Answer:        answers[i],
			CorrectAnswer: question.Correct,
			Explanation:   question.Explanation,
		})
	}
	res.Percent = 100 * float64(res.Correct) / float64(res.Total)
	return res, nil
}
