// Package navigator performs the POST-style hop to the external payment
// gateway. Rendering an auto-submitting form hands the browser over with the
// opaque fields intact; control leaves the application at that point.
package navigator

import (
	"html/template"
	"io"
	"net/http"

	"blane-checkout/internal/pkg/errs"
)

var formPostPage = template.Must(template.New("formpost").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment…</title></head>
<body onload="document.forms[0].submit()">
<form method="POST" action="{{.URL}}">
{{- range $name, $value := .Fields}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// FormPost writes the gateway hand-off page to w, typically the HTTP
// response of the checkout call.
type FormPost struct {
	w io.Writer
}

func NewFormPost(w io.Writer) *FormPost {
	return &FormPost{w: w}
}

func (f *FormPost) SubmitPaymentForm(redirectURL string, fields map[string]string) error {
	// The content type must go out before the first body byte; responses
	// served through an http.ResponseWriter cannot set it afterwards.
	if hw, ok := f.w.(http.ResponseWriter); ok {
		hw.Header().Set("Content-Type", "text/html; charset=utf-8")
	}

	data := struct {
		URL    string
		Fields map[string]string
	}{URL: redirectURL, Fields: fields}

	if err := formPostPage.Execute(f.w, data); err != nil {
		return errs.Wrap(err, "render payment form post")
	}
	return nil
}
