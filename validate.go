package herald

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
)

// Validate checks submitted values against the form's field constraints.
// Values for fields the form does not declare are ignored.
func (f Form) Validate(values map[string]string) error {
	for _, fd := range f.Fields {
		if err := validateValue(fd.Label, values[fd.ID], fd.Required, fd.MaxLength, fd.URL); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOptions checks string options captured with the command. The
// channel option is resolved by the platform and is not checked here.
func (c Command) ValidateOptions(options map[string]string) error {
	for _, o := range c.Options {
		if o.Type != OptionTypeString {
			continue
		}
		if err := validateValue(o.Name, options[o.Name], o.Required, o.MaxLength, o.URL); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(name, value string, required bool, maxLen int, isURL bool) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return fmt.Errorf("%s is required: %w", name, ErrValidation)
		}
		return nil
	}
	if maxLen > 0 {
		if n := utf16Len(value); n > maxLen {
			return fmt.Errorf("%s must be at most %d characters, got %d: %w", name, maxLen, n, ErrValidation)
		}
	}
	if isURL && !validURL(trimmed) {
		return fmt.Errorf("%s must be an http or https URL: %w", name, ErrValidation)
	}
	return nil
}

// utf16Len counts UTF-16 code units, the unit Discord applies length
// limits in. Characters outside the Basic Multilingual Plane count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
