package db

import (
	"fmt"
	"strings"
)

// Prefilter builders. Repositories compose these into the FT.SEARCH filter
// expression that restricts a KNN or text query before scoring.

// TagEquals matches a TAG field against an exact value (case-insensitive,
// RediSearch TAG semantics). Used for skill membership and boolean flags.
func TagEquals(field, value string) string {
	return fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(value))
}

// TagContains matches a TAG field by case-insensitive substring via an infix
// wildcard (requires DIALECT 2). Used for the location filter.
func TagContains(field, value string) string {
	return fmt.Sprintf("@%s:{*%s*}", field, tagEscaper.Replace(value))
}

// TextMatch matches a TEXT field against a free-form term.
func TextMatch(field, term string) string {
	return fmt.Sprintf("@%s:(%s)", field, EscapeTerm(term))
}

// CombineAll joins filter parts with implicit AND, skipping empty parts.
// Returns "" when nothing remains.
func CombineAll(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// EscapeTerm escapes RediSearch query syntax inside a free-form text term.
func EscapeTerm(s string) string {
	return termEscaper.Replace(s)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

var termEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
