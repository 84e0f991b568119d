package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/models"
)

// SubmissionClient performs the one network write behind a submission.
type SubmissionClient interface {
	Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error)
}

// ValidationError is returned when a submit is stopped before any write.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Result.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Result.Missing, ", "))
	}
	if len(e.Result.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Result.Invalid, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmissionError is every failure of the store write, whatever its cause,
// with a message fit for the visitor.
type SubmissionError struct {
	Message    string
	Unexpected bool
	Err        error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

type panicError struct {
	value any
}

func (e *panicError) Error() string { return fmt.Sprintf("panic during submission: %v", e.value) }

const unexpectedMessage = "An unexpected error occurred. Please try again."

// Outcome is the result of a successful submission.
type Outcome struct {
	Reference string              `json:"reference"`
	Record    models.StoredRecord `json:"record"`
}

// Snapshot is a consistent view of a form for rendering.
type Snapshot struct {
	Phase     Phase  `json:"phase"`
	Values    Values `json:"values"`
	Reference string `json:"reference,omitempty"`
}

type Option func(*Form)

func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

func WithLogger(entry *log.Entry) Option {
	return func(f *Form) { f.log = entry }
}

// Form is one visitor's instance of a lead form.
type Form struct {
	mu        sync.Mutex
	def       *Definition
	state     *State
	presenter *Presenter
	client    SubmissionClient
	now       func() time.Time
	log       *log.Entry
}

func NewForm(def *Definition, client SubmissionClient, sink NotificationSink, opts ...Option) *Form {
	f := &Form{
		def:       def,
		state:     NewState(def),
		presenter: NewPresenter(sink),
		client:    client,
		now:       time.Now,
		log:       log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.WithFields(log.Fields{"form": def.Slug, "table": def.Table})
	return f
}

func (f *Form) Definition() *Definition { return f.def }

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Phase:     f.presenter.Phase(),
		Values:    f.state.Values(),
		Reference: f.presenter.Reference(),
	}
}

// Subscribe registers a render trigger. fn runs with the form locked and must
// not call back into the form.
func (f *Form) Subscribe(fn func(Values)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Subscribe(fn)
}

func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.presenter.canEdit(); err != nil {
		return err
	}
	return f.state.SetField(name, value)
}

// SetFields applies several fields at once. Nothing changes if any name is unknown.
func (f *Form) SetFields(values Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.presenter.canEdit(); err != nil {
		return err
	}
	for name := range values {
		if _, ok := f.def.Field(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	for _, field := range f.def.Fields {
		if v, ok := values[field.Name]; ok {
			if err := f.state.SetField(field.Name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Submit validates the current values and, if they pass, writes them once.
// On success the fields are cleared; on failure they are kept for a retry.
// The write is detached from ctx cancellation: once started it runs to
// completion even if the caller goes away.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if err := f.presenter.canEdit(); err != nil {
		f.mu.Unlock()
		return Outcome{}, err
	}
	values := f.state.Values()
	if res := Validate(f.def, values); !res.OK {
		f.presenter.rejected(f.def, res)
		f.mu.Unlock()
		f.log.WithFields(log.Fields{"missing": res.Missing, "invalid": res.Invalid}).Debug("Submission rejected by validation")
		return Outcome{}, &ValidationError{Result: res}
	}
	if err := f.presenter.begin(); err != nil {
		f.mu.Unlock()
		return Outcome{}, err
	}
	f.mu.Unlock()

	stored, err := f.write(context.WithoutCancel(ctx), values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		subErr := f.submissionError(err)
		f.presenter.failed(subErr)
		f.log.WithError(err).Warn("Lead submission failed")
		return Outcome{}, subErr
	}

	ref := Reference(f.def.ReferencePrefix, f.now())
	f.state.Reset()
	f.presenter.succeeded(f.def, ref)
	f.log.WithFields(log.Fields{"reference": ref, "id": stored.ID}).Info("Lead submitted")
	return Outcome{Reference: ref, Record: stored}, nil
}

// SubmitAnother returns a submitted form to editing with empty fields. It
// reports false, and changes nothing, when the form was not submitted.
func (f *Form) SubmitAnother() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.presenter.another() {
		return false
	}
	f.state.Reset()
	return true
}

func (f *Form) write(ctx context.Context, values Values) (stored models.StoredRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	rec := f.def.Build(values)
	return f.client.Insert(ctx, rec.Table(), rec.Row())
}

func (f *Form) submissionError(err error) *SubmissionError {
	var pe *panicError
	if errors.As(err, &pe) {
		return &SubmissionError{Message: unexpectedMessage, Unexpected: true, Err: err}
	}
	return &SubmissionError{Message: f.def.FailureDescription, Err: err}
}
