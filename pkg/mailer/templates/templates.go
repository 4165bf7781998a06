package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// VerificationSubject is the subject line of the verification code email.
const VerificationSubject = "Your Task Tracker verification code"

var verificationHTML = template.Must(template.New("verification").Parse(`<p>Your Task Tracker email verification code:</p>
<p><b style="font-size:18px;">{{.Code}}</b></p>
<p>This code is valid for {{.ValidFor}}.</p>`))

// RenderVerification renders the text and HTML bodies of the verification
// code email. The validity window shown is derived from the expiry.
func RenderVerification(code string, expires time.Time) (text, html string, err error) {
	validFor := formatValidity(time.Until(expires))
	text = fmt.Sprintf("Your Task Tracker email verification code: %s (valid for %s)", code, validFor)

	var buf bytes.Buffer
	data := struct {
		Code     string
		ValidFor string
	}{Code: code, ValidFor: validFor}
	if err := verificationHTML.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return text, buf.String(), nil
}

func formatValidity(d time.Duration) string {
	if d <= 0 {
		return "0 minutes"
	}
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", mins)
}
