package terminal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

const outcomeTemplate = `Status: {{.StatusCode}}{{if eq .StatusCode 200}} (success){{else}} (failure){{end}}
{{.Body}}
`

// Reporter prints responder outcomes to the console
type Reporter struct {
	writer io.Writer
	asJSON bool
	tmpl   *template.Template
}

// NewReporter creates a new console reporter; asJSON switches to the raw
// Outcome document the Lambda runtime would receive.
func NewReporter(writer io.Writer, asJSON bool) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		asJSON: asJSON,
		tmpl:   template.Must(template.New("outcome").Parse(outcomeTemplate)),
	}
}

func (c *Reporter) Handle(outcome domain.Outcome) error {
	if c.asJSON {
		enc := json.NewEncoder(c.writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(outcome)
	}

	view := outcome
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(outcome.Body), "", "  "); err == nil {
		view.Body = pretty.String()
	}
	if err := c.tmpl.Execute(c.writer, view); err != nil {
		return fmt.Errorf("failed to render outcome: %w", err)
	}
	return nil
}
