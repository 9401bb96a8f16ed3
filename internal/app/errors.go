package app

import (
	"fmt"
	"strings"
)

// WarningsError fails a strict run whose plans carry warnings. The plans
// are not written.
type WarningsError struct {
	Variants []string
	Count    int
}

func (e *WarningsError) Error() string {
	return fmt.Sprintf("%d warning(s) in strict mode for variant(s) %s", e.Count, strings.Join(e.Variants, ", "))
}
