package jsoncolor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode"
)

// TokenClass is the lexical category of a scanned token, used to select
// its display styling.
type TokenClass int

const (
	ClassPlain TokenClass = iota
	ClassDelimiter
	ClassColon
	ClassComma
	ClassString
	ClassNumber
	ClassBool
	ClassNull
)

// Styler maps a token to its styled representation. Implementations
// must return text that strips back to the input unchanged.
type Styler interface {
	Style(class TokenClass, text string) string
}

type noStyle struct{}

func (noStyle) Style(_ TokenClass, text string) string { return text }

// Plain is a Styler that applies no styling at all, for non-terminal
// output.
var Plain Styler = noStyle{}

// Colorize styles each lexical token of json according to styler. The
// scan keeps an in-string flag and an escaped flag so quotes inside
// escape sequences do not toggle string mode, consumes maximal number
// tokens starting at a digit, sign, or dot, and consumes maximal word
// tokens to match the true/false/null keywords. Unrecognized text
// passes through unstyled; any input produces some output.
func Colorize(input string, styler Styler) string {
	var out bytes.Buffer
	runes := []rune(input)

	inString := false
	escaped := false

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			out.WriteString(styler.Style(ClassString, string(ch)))
			continue
		}

		switch {
		case ch == '"':
			inString = true
			out.WriteString(styler.Style(ClassString, string(ch)))
		case ch == ':':
			out.WriteString(styler.Style(ClassColon, string(ch)))
		case ch == ',':
			out.WriteString(styler.Style(ClassComma, string(ch)))
		case ch == '{' || ch == '}' || ch == '[' || ch == ']':
			out.WriteString(styler.Style(ClassDelimiter, string(ch)))
		case unicode.IsDigit(ch) || ch == '-' || ch == '.':
			j := i + 1
			for j < len(runes) && isNumberRune(runes[j]) {
				j++
			}
			out.WriteString(styler.Style(ClassNumber, string(runes[i:j])))
			i = j - 1
		case unicode.IsLetter(ch):
			j := i + 1
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			switch word {
			case "true", "false":
				out.WriteString(styler.Style(ClassBool, word))
			case "null":
				out.WriteString(styler.Style(ClassNull, word))
			default:
				out.WriteString(word)
			}
			i = j - 1
		default:
			out.WriteRune(ch)
		}
	}

	return out.String()
}

func isNumberRune(r rune) bool {
	return unicode.IsDigit(r) || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-'
}

// Pretty re-indents a valid JSON document and colorizes the result.
// Unlike Colorize, it fails on malformed input because indentation
// requires parsing.
func Pretty(jsonText string, styler Styler) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(jsonText), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON format: %w", err)
	}
	return Colorize(buf.String(), styler), nil
}
