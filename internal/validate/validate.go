// internal/validate/validate.go
// Package validate provides the accumulating validator used to check site
// configuration before a build starts.
package validate

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Error describes a single failed check.
type Error struct {
	Field   string
	Value   interface{}
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Errors bundles every failed check of a run into one error value, so a
// misconfigured site reports all problems at once instead of the first.
type Errors struct {
	errs []Error
}

func (e Errors) Error() string {
	if len(e.errs) == 0 {
		return ""
	}
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// All returns the individual errors.
func (e Errors) All() []Error {
	return e.errs
}

// Validator accumulates check failures.
type Validator struct {
	errs []Error
}

func New() *Validator {
	return &Validator{}
}

// AddError records a failed check.
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errs = append(v.errs, Error{Field: field, Value: value, Message: message})
}

// IsValid reports whether no check has failed so far.
func (v *Validator) IsValid() bool {
	return len(v.errs) == 0
}

// Err converts the accumulated failures into an error, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	copied := make([]Error, len(v.errs))
	copy(copied, v.errs)
	return Errors{errs: copied}
}

// NonEmpty checks that a required string is set.
func (v *Validator) NonEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "must not be empty", value)
	}
}

// Positive checks that an integer is >= 1.
func (v *Validator) Positive(field string, value int) {
	if value < 1 {
		v.AddError(field, "must be a positive integer", value)
	}
}

// URL checks that a string parses as an absolute http(s) URL with a host.
func (v *Validator) URL(field, value string) {
	if value == "" {
		v.AddError(field, "URL must not be empty", value)
		return
	}
	u, err := url.Parse(value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		v.AddError(field, "URL scheme must be http or https", value)
		return
	}
	if u.Host == "" {
		v.AddError(field, "URL must have a host", value)
	}
}

// Timezone checks that a string names a loadable IANA timezone.
func (v *Validator) Timezone(field, value string) {
	if value == "" {
		v.AddError(field, "timezone must not be empty", value)
		return
	}
	if _, err := time.LoadLocation(value); err != nil {
		v.AddError(field, "unknown IANA timezone", value)
	}
}

// LanguageTag checks that a string parses as a BCP 47 language tag.
func (v *Validator) LanguageTag(field, value string) {
	if value == "" {
		v.AddError(field, "language must not be empty", value)
		return
	}
	if _, err := language.Parse(value); err != nil {
		v.AddError(field, "invalid BCP 47 language tag", value)
	}
}

// RelativePath checks that a path stays below the output root: not absolute
// and not escaping via "..".
func (v *Validator) RelativePath(field, value string) {
	if value == "" {
		v.AddError(field, "path must not be empty", value)
		return
	}
	cleaned := path.Clean(strings.ReplaceAll(value, "%s", "x"))
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		v.AddError(field, "path must be relative to the output directory", value)
	}
}

// PathTemplate checks a feed path template for the expected number of %s
// placeholders. Any other printf verb is rejected so a template can be
// substituted with a single fmt.Sprintf call.
func (v *Validator) PathTemplate(field, value string, placeholders int) {
	if value == "" {
		v.AddError(field, "path template must not be empty", value)
		return
	}
	verbs := strings.Count(value, "%") - 2*strings.Count(value, "%%")
	if strings.Count(value, "%s") != placeholders || verbs != placeholders {
		switch placeholders {
		case 0:
			v.AddError(field, "path template must not contain placeholders", value)
		default:
			v.AddError(field, fmt.Sprintf("path template must contain exactly %d %%s placeholder", placeholders), value)
		}
		return
	}
	v.RelativePath(field, value)
}
