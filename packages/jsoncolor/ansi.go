package jsoncolor

import "github.com/fatih/color"

type ansiStyler struct {
	styles map[TokenClass]*color.Color
}

// NewANSIStyler returns a Styler that renders token classes as ANSI
// colors: delimiters bold cyan, colons yellow, commas white, strings
// green, numbers blue, booleans magenta, null red. It honors the
// package-wide color.NoColor switch.
func NewANSIStyler() Styler {
	return &ansiStyler{
		styles: map[TokenClass]*color.Color{
			ClassDelimiter: color.New(color.FgCyan, color.Bold),
			ClassColon:     color.New(color.FgYellow),
			ClassComma:     color.New(color.FgWhite),
			ClassString:    color.New(color.FgGreen),
			ClassNumber:    color.New(color.FgBlue),
			ClassBool:      color.New(color.FgMagenta),
			ClassNull:      color.New(color.FgRed),
		},
	}
}

func (s *ansiStyler) Style(class TokenClass, text string) string {
	c, ok := s.styles[class]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
