package main

import "fmt"

// Run executes the providers command.
func (c *ProvidersCmd) Run(deps *Dependencies) error {
	ids := deps.Providers.List()
	if len(ids) == 0 {
		fmt.Fprintln(deps.Stdout, "No providers configured.")
		fmt.Fprintln(deps.Stdout, "Set OPENAI_API_KEY, GEMINI_API_KEY, or ANTHROPIC_API_KEY to enable one.")
		return nil
	}

	for _, id := range ids {
		fmt.Fprintln(deps.Stdout, id)
	}
	return nil
}
