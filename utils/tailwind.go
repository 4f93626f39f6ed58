package utils

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Cn joins class lists, letting later classes win over conflicting
// earlier ones.
func Cn(classes ...string) string {
	nonEmpty := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return twmerge.Merge(nonEmpty...)
}
