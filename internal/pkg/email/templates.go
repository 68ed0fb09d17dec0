package email

import (
	"bytes"
	"html/template"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Welcome to Trip Planner!</h2>
<p>Please confirm your email address by clicking the link below. The link is valid for 24 hours.</p>
<p><a href="{{.Link}}">Confirm email</a></p>
<p>If you did not create an account, you can ignore this message.</p>
`))

var passwordResetTmpl = template.Must(template.New("reset").Parse(`
<h2>Password reset</h2>
<p>We received a request to reset your password. The link below is valid for one hour.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not request a reset, you can ignore this message.</p>
`))

func renderConfirmation(link string) (string, error) {
	return render(confirmationTmpl, link)
}

func renderPasswordReset(link string) (string, error) {
	return render(passwordResetTmpl, link)
}

func render(tmpl *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
