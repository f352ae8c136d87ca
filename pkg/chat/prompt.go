package chat

import (
	"fmt"
	"strings"

	"github.com/crewboard/crewboard-back/pkg/jobboard"
)

const systemPreamble = `You are the CrewBoard assistant on an event-staffing
company's website. Answer questions about working events, pay, and how to
apply. Be brief and friendly. If a question is about open roles, answer
only from the job listings below; if nothing fits, say so and point the
visitor to the careers page. Do not invent roles, pay rates, or dates.`

// BuildSystemPrompt renders the assistant instructions with the current
// open job listings injected as context.
func BuildSystemPrompt(jobs []jobboard.Job) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nOpen roles right now:\n")

	if len(jobs) == 0 {
		b.WriteString("(none listed right now; applications are still welcome via the careers page)\n")
		return b.String()
	}

	for _, j := range jobs {
		fmt.Fprintf(&b, "- %s", j.Title)
		if j.Location != "" {
			fmt.Fprintf(&b, " — %s", j.Location)
		}
		if j.Type != "" {
			fmt.Fprintf(&b, " (%s)", j.Type)
		}
		if j.Pay != "" {
			fmt.Fprintf(&b, ", pay: %s", j.Pay)
		}
		b.WriteString("\n")
	}
	return b.String()
}
