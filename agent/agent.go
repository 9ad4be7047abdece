// Package agent implements the interactive AI review assistant of the `tl`
// command. It holds a single chat with a trading-coach persona, primed with
// the user's reconstructed journal.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	Coach *Expert
}

// New creates a new Agent around the coach expert. It takes an io.Writer
// for the agent's output (e.g., os.Stdout), and an io.Reader for user input
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, coach *Expert) *Agent {
	return &Agent{
		w:     w,
		r:     bufio.NewReader(r),
		Coach: coach,
	}
}

const prompt = "review> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Coach.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to tl trade review. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Coach.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
