package validation

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindEmptyField       Kind = "empty_field"
	KindInvalidLength    Kind = "invalid_length"
	KindInvalidEmail     Kind = "invalid_email"
	KindPasswordMismatch Kind = "password_mismatch"
	KindDependencyUnmet  Kind = "dependency_unmet"
)

type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Report collects every field error produced by one validation run.
type Report struct {
	Fields []FieldError
}

func (r *Report) add(fe FieldError) {
	r.Fields = append(r.Fields, fe)
}

func (r *Report) Empty() bool {
	return len(r.Fields) == 0
}

// Err flattens the report into a single error, nil when the report is empty.
func (r *Report) Err() error {
	var err error
	for _, fe := range r.Fields {
		err = multierr.Append(err, fe)
	}
	return err
}

// Rule checks one field value. A nil result means the value passed.
// The runner fills in the field name on failures.
type Rule func(value string) *FieldError

// fieldRule binds an ordered list of rules to one field. The first failing
// rule short-circuits the rest for that field only.
type fieldRule struct {
	field string
	rules []Rule
}

// crossRule checks a field against other already-validated fields. It runs
// only when the field's own rules passed; a failed dependency is surfaced
// as a dependency_unmet entry instead of running the check.
type crossRule struct {
	field string
	deps  []string
	check func(value string, validated map[string]string) *FieldError
}

// runRules evaluates field rules first, building the validated-fields map,
// then cross rules against it. Independent fields are all evaluated even
// when earlier ones failed, so the report lists every offending field.
func runRules(raw map[string]string, fieldRules []fieldRule, crossRules []crossRule) (map[string]string, *Report) {
	report := &Report{}
	validated := make(map[string]string, len(raw))

	for _, fr := range fieldRules {
		value := raw[fr.field]
		failed := false
		for _, rule := range fr.rules {
			if fe := rule(value); fe != nil {
				fe.Field = fr.field
				report.add(*fe)
				failed = true
				break
			}
		}
		if !failed {
			validated[fr.field] = value
		}
	}

	for _, cr := range crossRules {
		value, ok := validated[cr.field]
		if !ok {
			continue
		}

		unmet := ""
		for _, dep := range cr.deps {
			if _, ok := validated[dep]; !ok {
				unmet = dep
				break
			}
		}
		if unmet != "" {
			report.add(FieldError{
				Field:   cr.field,
				Kind:    KindDependencyUnmet,
				Message: fmt.Sprintf("not checked: depends on %s, which failed validation", unmet),
			})
			continue
		}

		if fe := cr.check(value, validated); fe != nil {
			fe.Field = cr.field
			report.add(*fe)
			delete(validated, cr.field)
		}
	}

	return validated, report
}
