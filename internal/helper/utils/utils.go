package utils

import "strings"

// SplitTagNames splits a spreadsheet tag cell on ASCII and fullwidth
// commas, trimming whitespace around each name. Empty parts are dropped.
func SplitTagNames(cell string) []string {
	cell = strings.ReplaceAll(cell, "，", ",")
	var names []string
	for _, part := range strings.Split(cell, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// GradePrefix returns the leading run of digits of a class name, which
// identifies the cohort, e.g. "2023级5班" -> "2023". Empty when the class
// name has no numeric prefix.
func GradePrefix(className string) string {
	className = strings.TrimSpace(className)
	i := 0
	for i < len(className) && className[i] >= '0' && className[i] <= '9' {
		i++
	}
	return className[:i]
}
