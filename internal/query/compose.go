// Package query builds the single ranking query out of a persona and a
// job-to-be-done description.
package query

import (
	"fmt"

	"docrank/internal/domain"
)

// Compose combines the persona and job into one natural-language query.
// Missing role or expertise fields render as empty strings rather than
// failing; the template itself is fixed.
func Compose(persona domain.Persona, job string) string {
	return fmt.Sprintf("As a %s with expertise in %s, I need to %s",
		persona.Role(), persona.Expertise(), job)
}
