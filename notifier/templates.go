package notifier

import (
	"bytes"
	"fmt"
	"html/template"
)

type messageTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[TemplateKind]messageTemplate{
	KindCandidateConfirmation: {
		subject: "Form Confirmation",
		body:    template.Must(template.New("candidate").Parse(`<p>Hi {{.candidate_name}}, thanks for submitting the form!</p>`)),
	},
	KindAttorneyAlert: {
		subject: "Form Submitted Notification",
		body:    template.Must(template.New("attorney").Parse(`<p>Hi {{.attorney_name}}, {{.candidate_name}} has just submitted the form!</p>`)),
	},
}

// Render produces the subject and HTML body for kind. Values in data are
// HTML escaped.
func Render(kind TemplateKind, data map[string]string) (string, string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown template kind: %s", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s: %w", kind, err)
	}
	return tmpl.subject, buf.String(), nil
}
