package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. When the terminal
// cannot be styled the raw markdown is printed instead.
func printMarkdown(markdown string) {
	out, err := glamour.RenderWithEnvironmentConfig(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
