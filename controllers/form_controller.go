package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/catalog"
	"github.com/kgnconstruction/kgnbackend/dto"
	"github.com/kgnconstruction/kgnbackend/forms"
	"github.com/kgnconstruction/kgnbackend/middleware"
)

// Binder reads a submitted body (JSON or urlencoded) into form values.
type Binder func(c *gin.Context) (forms.Values, error)

func BindQuote(c *gin.Context) (forms.Values, error) {
	var body dto.QuoteRequestDTO
	if err := c.ShouldBind(&body); err != nil {
		return nil, err
	}
	return body.Values(), nil
}

func BindCustomProject(c *gin.Context) (forms.Values, error) {
	var body dto.CustomProjectDTO
	if err := c.ShouldBind(&body); err != nil {
		return nil, err
	}
	return body.Values(), nil
}

func BindContact(c *gin.Context) (forms.Values, error) {
	var body dto.ContactMessageDTO
	if err := c.ShouldBind(&body); err != nil {
		return nil, err
	}
	return body.Values(), nil
}

type page struct {
	Title      string
	Notices    []forms.Notification
	Definition *forms.Definition
	Snapshot   forms.Snapshot
	Action     string
	Catalog    *catalog.Catalog
}

// GET /
func Index(reg *forms.Registry, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), forms.ContactForm)
		c.HTML(http.StatusOK, "index.html", page{
			Title:      "Home",
			Notices:    inst.Notices.Drain(),
			Definition: forms.ContactForm,
			Snapshot:   inst.Snapshot(),
			Action:     "/contact",
			Catalog:    cat,
		})
	}
}

// GET /quote, GET /custom-project
func ShowForm(reg *forms.Registry, def *forms.Definition, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), def)
		c.HTML(http.StatusOK, "form.html", page{
			Title:      def.Title,
			Notices:    inst.Notices.Drain(),
			Definition: def,
			Snapshot:   inst.Snapshot(),
			Action:     action,
		})
	}
}

// SubmitForm handles a browser post and redirects to redirectTo, where the
// outcome is rendered from the form's phase and queued notifications.
func SubmitForm(reg *forms.Registry, def *forms.Definition, bind Binder, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), def)

		values, err := bind(c)
		if err != nil {
			c.String(http.StatusBadRequest, "malformed form body")
			return
		}

		if err := inst.SetFields(values); err != nil {
			if errors.Is(err, forms.ErrSubmissionInFlight) {
				inst.Notices.Notify(inProgressNotice)
			}
			c.Redirect(http.StatusSeeOther, redirectTo)
			return
		}

		// Validation and write failures are already queued as notifications.
		if _, err := inst.Submit(c.Request.Context()); errors.Is(err, forms.ErrSubmissionInFlight) {
			inst.Notices.Notify(inProgressNotice)
		}
		c.Redirect(http.StatusSeeOther, redirectTo)
	}
}

// POST /quote/another, POST /custom-project/another
func SubmitAnother(reg *forms.Registry, def *forms.Definition, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg.Get(middleware.SessionID(c), def).SubmitAnother()
		c.Redirect(http.StatusSeeOther, redirectTo)
	}
}

var inProgressNotice = forms.Notification{
	Title:       "Submission In Progress",
	Description: "Your previous submission is still being sent.",
	Variant:     forms.VariantDefault,
}

// GET /api/quotes
func GetFormState(reg *forms.Registry, def *forms.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), def)
		c.JSON(http.StatusOK, gin.H{
			"form":          def.Slug,
			"state":         inst.Snapshot(),
			"notifications": inst.Notices.Drain(),
		})
	}
}

// POST /api/quotes
// Body: { "fullName": "...", "email": "...", ... }
func CreateSubmission(reg *forms.Registry, def *forms.Definition, bind Binder) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), def)

		values, err := bind(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := inst.SetFields(values); err != nil {
			respondSubmitError(c, inst, err)
			return
		}

		outcome, err := inst.Submit(c.Request.Context())
		if err != nil {
			respondSubmitError(c, inst, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"reference":     outcome.Reference,
			"record":        outcome.Record,
			"notifications": inst.Notices.Drain(),
		})
	}
}

func respondSubmitError(c *gin.Context, inst *forms.Instance, err error) {
	var validationErr *forms.ValidationError
	var submissionErr *forms.SubmissionError

	switch {
	case errors.As(err, &validationErr):
		title := "Missing Information"
		if len(validationErr.Result.Missing) == 0 {
			title = "Invalid Information"
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         title,
			"missing":       validationErr.Result.Missing,
			"invalid":       validationErr.Result.Invalid,
			"notifications": inst.Notices.Drain(),
		})
	case errors.Is(err, forms.ErrSubmissionInFlight), errors.Is(err, forms.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, forms.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &submissionErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":         "Submission Failed",
			"message":       submissionErr.Message,
			"notifications": inst.Notices.Drain(),
		})
	default:
		log.WithError(err).Error("Unhandled submission error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// POST /api/quotes/another
func ResetSubmission(reg *forms.Registry, def *forms.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst := reg.Get(middleware.SessionID(c), def)
		if !inst.SubmitAnother() {
			c.JSON(http.StatusConflict, gin.H{"error": "form has not been submitted"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": inst.Snapshot()})
	}
}
