package forms

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/kgnconstruction/kgnbackend/models"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func fieldValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Result is the outcome of Validate. Missing and Invalid hold field names in
// form order.
type Result struct {
	OK      bool     `json:"ok"`
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

// Validate checks a set of values against a definition. A required field is
// present when it is non-empty as it would be stored: trimmed, and for free
// text with markup stripped. Select fields must hold one of their options and
// email fields a well-formed address.
func Validate(def *Definition, values Values) Result {
	var res Result
	for _, f := range def.Fields {
		v := storedValue(f, values[f.Name])
		if v == "" {
			if f.Required {
				res.Missing = append(res.Missing, f.Name)
			}
			continue
		}
		if !validValue(f, v) {
			res.Invalid = append(res.Invalid, f.Name)
		}
	}
	res.OK = len(res.Missing) == 0 && len(res.Invalid) == 0
	return res
}

// storedValue mirrors the cleaning the definitions' Build funcs apply.
func storedValue(f Field, raw string) string {
	switch f.Kind {
	case KindText, KindPhone, KindTextArea:
		return Clean(raw)
	}
	return strings.TrimSpace(raw)
}

func validValue(f Field, v string) bool {
	switch {
	case len(f.Options) > 0:
		return lo.ContainsBy(f.Options, func(o models.Option) bool { return o.Value == v })
	case f.Kind == KindEmail:
		return fieldValidator().Var(v, "email") == nil
	}
	return true
}
