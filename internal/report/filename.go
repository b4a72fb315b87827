package report

import "strings"

const filenameSuffix = "_summary.pdf"

// Filename derives the report file name from the article title: lowercased,
// every non-alphanumeric character replaced with an underscore, defaulting
// to "summary" when the title is empty.
func Filename(title string) string {
	if title == "" {
		return "summary" + filenameSuffix
	}

	var sb strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String() + filenameSuffix
}
