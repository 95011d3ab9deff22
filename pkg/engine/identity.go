package engine

import "fmt"

// Identify renders the 5-line "identify" response of §6.2.
func (e *Engine) Identify() []string {
	return []string{
		fmt.Sprintf("identify name %v", Name),
		fmt.Sprintf("identify version %v", version),
		fmt.Sprintf("identify author %v", Author),
		fmt.Sprintf("identify url %v", URL),
		"identify ok",
	}
}
