package utils

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/microcosm-cc/bluemonday"
)

const (
	maxDominioNameLen = 253
	maxAreaNameLen    = 100
	maxLocalPartLen   = 64
)

var strict = bluemonday.StrictPolicy()

// hasMarkup reports whether s contains html that the strict policy would strip.
func hasMarkup(s string) bool {
	return html.UnescapeString(strict.Sanitize(s)) != s
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func fieldError(field, reason string) error {
	return errors.Validation("Datos inválidos", map[string]string{field: reason})
}

type DominioNameValidator struct{}

func (v *DominioNameValidator) Name(name string) error {
	if name == "" {
		return fieldError("name", "es obligatorio")
	}
	if utf8.RuneCountInString(name) > maxDominioNameLen {
		return fieldError("name", "es demasiado largo")
	}
	if hasSpace(name) || strings.Contains(name, "@") {
		return fieldError("name", "no puede contener espacios ni '@'")
	}
	if hasMarkup(name) {
		return fieldError("name", "no puede contener html")
	}
	return nil
}

type AreaNameValidator struct{}

func (v *AreaNameValidator) Name(name string) error {
	if name == "" {
		return fieldError("name", "es obligatorio")
	}
	if utf8.RuneCountInString(name) > maxAreaNameLen {
		return fieldError("name", "es demasiado largo")
	}
	if hasMarkup(name) {
		return fieldError("name", "no puede contener html")
	}
	return nil
}

type LocalPartValidator struct{}

func (v *LocalPartValidator) LocalPart(localPart string) error {
	if localPart == "" {
		return fieldError("localPart", "es obligatorio")
	}
	if utf8.RuneCountInString(localPart) > maxLocalPartLen {
		return fieldError("localPart", "es demasiado largo")
	}
	if hasSpace(localPart) || strings.Contains(localPart, "@") {
		return fieldError("localPart", "no puede contener espacios ni '@'")
	}
	if hasMarkup(localPart) {
		return fieldError("localPart", "no puede contener html")
	}
	return nil
}
