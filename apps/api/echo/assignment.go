package echoapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/assignment"
	"github.com/wcccd/mihistory/core/specialist"
)

type assignmentApi struct {
	registry *specialist.Registry
	validate *validator.Validate
}

func registerAssignmentAPI(
	g *echo.Group,
	sess echo.MiddlewareFunc,
	registry *specialist.Registry,
	validate *validator.Validate,
) {
	api := assignmentApi{
		registry: registry,
		validate: validate,
	}

	ag := g.Group("/assignment", sess)
	ag.GET("/progress", api.progress)
	ag.PUT("/notes/:specialist", api.saveNotes)
	ag.PUT("/essay/:specialist", api.saveEssay)
	ag.POST("/reflections/:specialist", api.submitReflection)
	ag.GET("/export", api.export)
}

// Bindings

type NotesRequest struct {
	Notes string `json:"notes"`
}

type EssayRequest struct {
	Essay string `json:"essay"`
}

type (
	SpecialistProgress struct {
		Specialist     string `json:"specialist"`
		Name           string `json:"name"`
		QuestionsAsked int    `json:"questions_asked"`
		Required       int    `json:"required_questions"`
		EssayWordCount int    `json:"essay_word_count"`
		Completed      bool   `json:"completed"`
	}

	ProgressResponse struct {
		Specialists          []SpecialistProgress `json:"specialists"`
		TotalConsultations   int                  `json:"total_consultations"`
		CompletedReflections int                  `json:"completed_reflections"`
		Complete             bool                 `json:"complete"`
	}

	EssayResponse struct {
		WordCount int  `json:"word_count"`
		MinWords  int  `json:"min_words"`
		MaxWords  int  `json:"max_words"`
		InBand    bool `json:"in_band"`
	}
)

// contextSpecialist resolves the :specialist path param against the registry.
func (api *assignmentApi) contextSpecialist(ctx echo.Context) (specialist.Specialist, error) {
	sp, err := api.registry.Get(ctx.Param("specialist"))
	if err != nil {
		return specialist.Specialist{}, errHttpNotFound
	}
	return sp, nil
}

// Handlers

func (api *assignmentApi) progress(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	prog := sess.Progress
	resp := ProgressResponse{Specialists: make([]SpecialistProgress, 0, api.registry.Len())}
	for _, sp := range api.registry.All() {
		asked, _ := prog.AskedCount(sp.ID)
		essay, _ := prog.Essay(sp.ID)
		completed, _ := prog.Completed(sp.ID)
		resp.Specialists = append(resp.Specialists, SpecialistProgress{
			Specialist:     sp.ID,
			Name:           sp.Name,
			QuestionsAsked: asked,
			Required:       assignment.MinConsultations,
			EssayWordCount: core.WordCount(essay),
			Completed:      completed,
		})
	}
	resp.TotalConsultations, resp.CompletedReflections = prog.Overall()
	resp.Complete = prog.Complete()

	return ctx.JSON(http.StatusOK, resp)
}

func (api *assignmentApi) saveNotes(ctx echo.Context) error {
	sp, err := api.contextSpecialist(ctx)
	if err != nil {
		return err
	}
	var data NotesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NotesRequest")
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if err := sess.Progress.SaveNotes(sp.ID, data.Notes); err != nil {
		return errors.Wrap(err, "saving notes")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) saveEssay(ctx echo.Context) error {
	sp, err := api.contextSpecialist(ctx)
	if err != nil {
		return err
	}
	var data EssayRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EssayRequest")
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	// drafts are always retained; only submission is word-count gated
	if err := sess.Progress.SaveEssay(sp.ID, data.Essay); err != nil {
		return errors.Wrap(err, "saving essay")
	}

	wc := core.WordCount(data.Essay)
	return ctx.JSON(http.StatusOK, EssayResponse{
		WordCount: wc,
		MinWords:  assignment.MinReflectionWords,
		MaxWords:  assignment.MaxReflectionWords,
		InBand:    wc >= assignment.MinReflectionWords && wc <= assignment.MaxReflectionWords,
	})
}

func (api *assignmentApi) submitReflection(ctx echo.Context) error {
	sp, err := api.contextSpecialist(ctx)
	if err != nil {
		return err
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	if err := sess.Progress.SubmitReflection(sp.ID); err != nil {
		switch errors.Cause(err) {
		case assignment.ErrNotEnoughConsultations, assignment.ErrOutOfBand:
			return core.NewValidationError(err)
		default:
			return errors.Wrap(err, "submitting reflection")
		}
	}

	total, completed := sess.Progress.Overall()
	return ctx.JSON(http.StatusOK, echo.Map{
		"specialist":            sp.ID,
		"completed":             true,
		"total_consultations":   total,
		"completed_reflections": completed,
		"assignment_complete":   sess.Progress.Complete(),
	})
}

func (api *assignmentApi) export(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if !sess.Progress.Complete() {
		return core.NewValidationError(errors.New("assignment is not complete yet"))
	}

	now := time.Now().UTC()
	doc := assignment.Export(sess.Progress, now)
	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", assignment.ExportFilename(now)),
	)
	return ctx.JSON(http.StatusOK, doc)
}
