package mail

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// IntelItem is one piece of scammer intel listed in a call summary email.
type IntelItem struct {
	Field      string
	Value      string
	Confidence float64
}

// CallSummary is the operator notification sent once a call has been summarised.
type CallSummary struct {
	CallID          string
	Caller          string
	Status          string
	DurationSeconds int
	Summary         string
	Intel           []IntelItem
}

func (s CallSummary) Subject() string {
	return fmt.Sprintf("Scam call from %s wasted %ds", s.Caller, s.DurationSeconds)
}

// HTML renders the email body. All call data is escaped.
func (s CallSummary) HTML() string {
	var b strings.Builder
	b.WriteString("<h2>Call ")
	b.WriteString(html.EscapeString(s.CallID))
	b.WriteString("</h2>")
	fmt.Fprintf(&b, "<p>Caller: %s<br>Status: %s<br>Duration: %ds</p>",
		html.EscapeString(s.Caller), html.EscapeString(s.Status), s.DurationSeconds)

	b.WriteString("<h3>Summary</h3><pre>")
	b.WriteString(html.EscapeString(s.Summary))
	b.WriteString("</pre>")

	if len(s.Intel) > 0 {
		b.WriteString("<h3>Extracted intel</h3><ul>")
		for _, item := range s.Intel {
			fmt.Fprintf(&b, "<li>%s: %s (%.0f%%)</li>",
				html.EscapeString(item.Field), html.EscapeString(item.Value), item.Confidence*100)
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// SendCallSummary emails a call summary and returns the provider message id.
func (c *ResendClient) SendCallSummary(ctx context.Context, from, to string, summary CallSummary) (string, error) {
	if to == "" {
		return "", fmt.Errorf("call summary recipient is required")
	}
	return c.SendEmail(ctx, from, to, summary.Subject(), summary.HTML())
}
