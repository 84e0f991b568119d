package forms

import (
	"errors"
	"fmt"
	"maps"

	"github.com/samber/lo"
)

var ErrUnknownField = errors.New("unknown field")

// Values holds the raw text of every field, keyed by field name.
type Values map[string]string

// State is the field values of one form instance. It is not safe for
// concurrent use on its own; Form serializes access to it.
type State struct {
	names     []string
	values    Values
	observers []func(Values)
}

func NewState(def *Definition) *State {
	s := &State{
		names: lo.Map(def.Fields, func(f Field, _ int) string { return f.Name }),
	}
	s.values = s.empty()
	return s
}

// SetField replaces one field and leaves the others untouched.
func (s *State) SetField(name, value string) error {
	if !lo.Contains(s.names, name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[name] = value
	s.notify()
	return nil
}

// Values returns a copy of the current values.
func (s *State) Values() Values {
	return maps.Clone(s.values)
}

// Reset clears every field.
func (s *State) Reset() {
	s.values = s.empty()
	s.notify()
}

// Subscribe registers fn to run after every change, typically to re-render.
func (s *State) Subscribe(fn func(Values)) {
	s.observers = append(s.observers, fn)
}

func (s *State) notify() {
	for _, fn := range s.observers {
		fn(s.Values())
	}
}

func (s *State) empty() Values {
	v := make(Values, len(s.names))
	for _, n := range s.names {
		v[n] = ""
	}
	return v
}
