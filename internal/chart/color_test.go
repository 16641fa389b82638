package chart

import (
	"errors"
	"strings"
	"testing"
)

func TestValidColor(t *testing.T) {
	valid := []string{
		"#fff", "#222831", "#76ABAEcc",
		"rgb(34, 40, 49)", "rgba(118, 171, 174, 0.2)", "hsl(200, 50%, 40%)",
		"white",
	}
	for _, c := range valid {
		if !ValidColor(c) {
			t.Errorf("ValidColor(%q) = false, want true", c)
		}
	}

	invalid := []string{
		"", "#12", "rgb(1, 2)", "red; background: url(x)", "expression(alert(1))", "#fff}",
	}
	for _, c := range invalid {
		if ValidColor(c) {
			t.Errorf("ValidColor(%q) = true, want false", c)
		}
	}
}

func TestThemeValidate(t *testing.T) {
	if err := DefaultTheme().Validate(); err != nil {
		t.Fatalf("default theme: %v", err)
	}

	theme := DefaultTheme()
	theme.Grid = "url(javascript:x)"
	err := theme.Validate()
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
	if !strings.Contains(err.Error(), "theme.grid") {
		t.Errorf("error %q should name the field", err)
	}
}
