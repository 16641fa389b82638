package chart

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidColor is returned for a theme colour that is not a plain CSS
// colour value.
var ErrInvalidColor = errors.New("invalid colour")

var colorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`),
	regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\(\s*\d+(?:\.\d+)?%?\s*(?:,\s*\d+(?:\.\d+)?%?\s*){2,3}\)$`),
	regexp.MustCompile(`^[a-zA-Z]+$`),
}

// ValidColor reports whether s is a hex, rgb(a), hsl(a) or named colour.
// Only these forms are emitted into stylesheets and SVG attributes.
func ValidColor(s string) bool {
	for _, re := range colorPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Validate checks every colour in the theme.
func (t Theme) Validate() error {
	for _, c := range []struct{ name, value string }{
		{"text", t.Text},
		{"background", t.Background},
		{"grid", t.Grid},
		{"accent", t.Accent},
		{"fill", t.Fill},
	} {
		if !ValidColor(c.value) {
			return fmt.Errorf("%w: theme.%s = %q", ErrInvalidColor, c.name, c.value)
		}
	}
	return nil
}
