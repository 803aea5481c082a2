// Package casing checks whether text is written in a named case style.
package casing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style names accepted by Is.
const (
	Lower    = "lower-case"
	Upper    = "upper-case"
	Camel    = "camel-case"
	Kebab    = "kebab-case"
	Pascal   = "pascal-case"
	Sentence = "sentence-case"
	Snake    = "snake-case"
	Start    = "start-case"
)

// Styles lists every supported style.
var Styles = []string{Lower, Upper, Camel, Kebab, Pascal, Sentence, Snake, Start}

// Casers are stateful, so every conversion gets its own.
func lowerCaser() cases.Caser { return cases.Lower(language.Und) }
func upperCaser() cases.Caser { return cases.Upper(language.Und) }
func titleCaser() cases.Caser { return cases.Title(language.Und) }

// Is reports whether s is already written in style.
func Is(s, style string) (bool, error) {
	converted, err := To(s, style)
	if err != nil {
		return false, err
	}
	return s == converted, nil
}

// IsAny reports whether s matches at least one of styles.
func IsAny(s string, styles []string) (bool, error) {
	for _, style := range styles {
		ok, err := Is(s, style)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// To converts s into style.
func To(s, style string) (string, error) {
	switch style {
	case Lower:
		return lowerCaser().String(s), nil
	case Upper:
		return upperCaser().String(s), nil
	case Sentence:
		return upperFirst(lowerCaser().String(s)), nil
	case Camel:
		words := Words(s)
		for i, w := range words {
			if i == 0 {
				words[i] = lowerCaser().String(w)
			} else {
				words[i] = titleCaser().String(w)
			}
		}
		return strings.Join(words, ""), nil
	case Pascal:
		return joinWords(s, titleCaser(), ""), nil
	case Kebab:
		return joinWords(s, lowerCaser(), "-"), nil
	case Snake:
		return joinWords(s, lowerCaser(), "_"), nil
	case Start:
		return joinWords(s, titleCaser(), " "), nil
	default:
		return "", fmt.Errorf("unknown case style %q (valid: %s)", style, strings.Join(Styles, ", "))
	}
}

// Words splits s at case changes and at any rune that is neither a letter
// nor a digit. "fooBar-baz" yields [foo Bar baz].
func Words(s string) []string {
	var words []string
	for _, part := range camelcase.Split(s) {
		if strings.IndexFunc(part, isWordRune) < 0 {
			continue
		}
		words = append(words, part)
	}
	return words
}

func joinWords(s string, caser cases.Caser, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, sep)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
