package forms

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrAlreadySubmitted   = errors.New("form already submitted")
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message for the visitor (a toast on the page).
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// NotificationSink receives the notifications a form raises.
type NotificationSink interface {
	Notify(Notification)
}

// NotificationQueue buffers notifications until the next page render drains them.
type NotificationQueue struct {
	mu    sync.Mutex
	items []Notification
}

func (q *NotificationQueue) Notify(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns the queued notifications and empties the queue.
func (q *NotificationQueue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Presenter tracks which of the three phases a form is in and raises the
// matching notifications.
type Presenter struct {
	phase     Phase
	reference string
	sink      NotificationSink
}

func NewPresenter(sink NotificationSink) *Presenter {
	return &Presenter{phase: PhaseEditing, sink: sink}
}

func (p *Presenter) Phase() Phase { return p.phase }

// Reference is the token of the last successful submission while the form is
// in the submitted phase, empty otherwise.
func (p *Presenter) Reference() string { return p.reference }

// canEdit reports why the fields may not change right now, if they may not.
func (p *Presenter) canEdit() error {
	switch p.phase {
	case PhaseSubmitting:
		return ErrSubmissionInFlight
	case PhaseSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

func (p *Presenter) begin() error {
	if err := p.canEdit(); err != nil {
		return err
	}
	p.phase = PhaseSubmitting
	return nil
}

func (p *Presenter) rejected(def *Definition, res Result) {
	if len(res.Missing) > 0 {
		p.notify(Notification{
			Title:       "Missing Information",
			Description: fmt.Sprintf("Please fill in all required fields: %s.", strings.Join(def.Labels(res.Missing), ", ")),
			Variant:     VariantDestructive,
		})
		return
	}
	p.notify(Notification{
		Title:       "Invalid Information",
		Description: fmt.Sprintf("Please check these fields: %s.", strings.Join(def.Labels(res.Invalid), ", ")),
		Variant:     VariantDestructive,
	})
}

func (p *Presenter) succeeded(def *Definition, reference string) {
	if def.ConfirmOnSuccess {
		p.phase = PhaseSubmitted
		p.reference = reference
	} else {
		p.phase = PhaseEditing
	}
	n := def.Success
	n.Variant = VariantDefault
	p.notify(n)
}

func (p *Presenter) failed(err *SubmissionError) {
	p.phase = PhaseEditing
	p.notify(Notification{
		Title:       "Submission Failed",
		Description: err.Message,
		Variant:     VariantDestructive,
	})
}

// another leaves the submitted phase. It reports whether a transition happened.
func (p *Presenter) another() bool {
	if p.phase != PhaseSubmitted {
		return false
	}
	p.phase = PhaseEditing
	p.reference = ""
	return true
}

func (p *Presenter) notify(n Notification) {
	if p.sink != nil {
		p.sink.Notify(n)
	}
}
