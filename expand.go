package main

import (
	"os"
	"regexp"
	"strings"
)

// $VAR or ${VAR}
var envRef = regexp.MustCompile(`\$\w+|\$\{[^}]+\}`)

// ExpandEnv substitutes $VAR and ${VAR} references in a profile value
// with environment values. Undefined variables are left in place and
// reported.
func ExpandEnv(text string) string {
	matches := envRef.FindAllString(text, -1)

	for _, m := range matches {
		varname := strings.TrimPrefix(m, "$")
		varname = strings.Trim(varname, "{}")

		val, ok := os.LookupEnv(varname)
		if !ok {
			out.Warn().Str("variable", m).Msg("undefined variable in profile")
			continue
		}

		text = strings.Replace(text, m, val, 1)
	}

	return text
}
