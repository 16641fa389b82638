package components

import "strings"

var bannerLines = []string{
	"┏━╸┏━┓┏━┓┏━╸┏━╸┏━┓┏━┓┏━┓╺┳╸╻ ╻",
	"┃  ┣━┫┣┳┛┣╸ ┣╸ ┣┳┛┣━┛┣━┫ ┃ ┣━┫",
	"┗━╸╹ ╹╹┗╸┗━╸┗━╸╹┗╸╹  ╹ ╹ ╹ ╹ ╹",
}

const tagline = "find a career that fits"

// RenderBanner returns the styled application banner.
func RenderBanner(s Styles) string {
	var b strings.Builder
	for _, line := range bannerLines {
		b.WriteString(s.Title.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(s.Muted.Render(tagline))
	return b.String()
}
