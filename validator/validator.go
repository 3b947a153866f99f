package validator

import (
	"strings"

	"github.com/nakamauwu/parcelmate/errs"
)

type Validator struct {
	Errors map[string][]string
	fields []string
}

func New() *Validator {
	return &Validator{
		Errors: map[string][]string{},
	}
}

func (v *Validator) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	if _, ok := v.Errors[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

// Check adds the error only when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *Validator) First(field string) string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages[0]
	}
	return ""
}

func (v *Validator) All(field string) []string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages
	}
	return nil
}

func (v *Validator) Error() string {
	if !v.HasErrors() {
		return ""
	}

	var b strings.Builder
	for _, field := range v.fields {
		b.WriteString(field + ": \n")
		for _, msg := range v.Errors[field] {
			b.WriteString("\t- " + msg + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// AsError converts the accumulated errors into an invalid argument error
// pointing at the first offending field.
func (v *Validator) AsError() error {
	if !v.HasErrors() {
		return nil
	}

	field := v.fields[0]
	msgs := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		msgs = append(msgs, v.Errors[f]...)
	}

	return errs.NewInvalidArgumentError(field, strings.Join(msgs, "; "))
}
