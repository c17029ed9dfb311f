package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/assignment"
	"github.com/wcccd/mihistory/core/consult"
	"github.com/wcccd/mihistory/core/specialist"
)

const defaultRecentConsultations = 10

type specialistApi struct {
	svc      *consult.Service
	validate *validator.Validate
}

func registerSpecialistAPI(
	g *echo.Group,
	sess echo.MiddlewareFunc,
	svc *consult.Service,
	validate *validator.Validate,
) {
	api := specialistApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/specialists", api.query)
	g.GET("/status", api.status)

	sg := g.Group("", sess)
	sg.POST("/residency", api.verifyResidency)
	sg.POST("/consultations", api.consult)
	sg.GET("/consultations", api.recent)
}

// Bindings

type ConsultationRequest struct {
	Specialist string `json:"specialist" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Category   string `json:"category"`
}

func (r *ConsultationRequest) Validate(validate *validator.Validate) error {
	r.Specialist = core.CleanString(r.Specialist)
	r.Question = core.CleanString(r.Question)
	r.Category = core.CleanString(r.Category)
	return validate.Struct(r)
}

type ResidencyRequest struct {
	City string `json:"city" validate:"required"`
	Zip  string `json:"zip" validate:"required,uszip"`
}

func (r *ResidencyRequest) Validate(validate *validator.Validate) error {
	r.City = core.CleanString(r.City)
	r.Zip = core.CleanString(r.Zip)
	return validate.Struct(r)
}

type (
	ConsultationResponse struct {
		Entry      consult.Entry `json:"entry"`
		AskedCount int           `json:"asked_count"`
		Required   int           `json:"required_questions"`
	}

	StatusResponse struct {
		Online  bool   `json:"online"`
		Outcome string `json:"outcome"`
		Message string `json:"message,omitempty"`
	}
)

// Handlers

func (api *specialistApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Registry().All())
}

// status reports the cached connectivity self-test; display-only.
func (api *specialistApi) status(ctx echo.Context) error {
	outcome := api.svc.SelfTest(ctx.Request().Context())
	resp := StatusResponse{
		Online:  outcome.Kind == consult.Success,
		Outcome: outcome.Kind.String(),
	}
	if !resp.Online {
		resp.Message = consult.Classify(outcome)
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *specialistApi) verifyResidency(ctx echo.Context) error {
	var data ResidencyRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResidencyRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	sess.VerifyResidency(data.City, data.Zip)

	return ctx.JSON(http.StatusOK, sess.Residency)
}

func (api *specialistApi) consult(ctx echo.Context) error {
	var data ConsultationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ConsultationRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	entry, err := api.svc.Consult(ctx.Request().Context(), sess.Ledger, sess.Progress, consult.Request{
		Specialist:       data.Specialist,
		Question:         data.Question,
		Category:         data.Category,
		Location:         sess.Residency.Location,
		ResidentVerified: sess.Residency.Verified,
	})
	if err != nil {
		if errors.Cause(err) == specialist.ErrNotFound {
			return core.NewValidationError(err, core.FieldError{Field: "specialist", Error: err.Error()})
		}
		return errors.Wrap(err, "consulting specialist")
	}

	askedCount, _ := sess.Progress.AskedCount(entry.Specialist)
	return ctx.JSON(http.StatusOK, ConsultationResponse{
		Entry:      entry,
		AskedCount: askedCount,
		Required:   assignment.MinConsultations,
	})
}

func (api *specialistApi) recent(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	limit := defaultRecentConsultations
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "limit", Error: "a non-negative integer is required"})
		}
		limit = n
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total":   sess.Ledger.Len(),
		"entries": sess.Ledger.Recent(limit),
	})
}
