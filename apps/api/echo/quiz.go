package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/quiz"
)

type quizApi struct {
	svc *quiz.Service
}

func registerQuizAPI(g *echo.Group, sess echo.MiddlewareFunc, svc *quiz.Service) {
	api := quizApi{svc: svc}

	sg := g.Group("/quizzes", sess)
	sg.POST("/:id/score", api.score)

	g.GET("/quizzes", api.query)
}

// Bindings

type ScoreRequest struct {
	// Answers holds one zero-based option index per question, in question
	// order; -1 marks a question as unanswered.
	Answers []int `json:"answers"`
}

type ScoreResponse struct {
	quiz.Result
	Band     string `json:"band"`
	Attempts int    `json:"attempts"`
}

// Handlers

func (api *quizApi) query(ctx echo.Context) error {
	// correct indices and explanations are excluded from the payload
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *quizApi) score(ctx echo.Context) error {
	qz, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data ScoreRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ScoreRequest")
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	res, err := api.svc.Score(qz.ID, data.Answers)
	if err != nil {
		switch errors.Cause(err) {
		case quiz.ErrIncompleteSubmission, quiz.ErrAnswerOutOfRange:
			// rejected whole; the attempt counter is not incremented
			return core.NewValidationError(err, core.FieldError{Field: "answers", Error: err.Error()})
		default:
			return errors.Wrap(err, "scoring quiz")
		}
	}
	sess.QuizAttempts.Increment(qz.ID)

	return ctx.JSON(http.StatusOK, ScoreResponse{
		Result:   res,
		Band:     res.Band(),
		Attempts: sess.QuizAttempts.Count(qz.ID),
	})
}
