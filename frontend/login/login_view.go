package login

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/data-center-bgp/po-bunker/frontend/shared/html"
)

// GetLoginScreen renders the login form with an optional error banner.
func GetLoginScreen(errorMessage string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := `<main class="login-wrap"><div class="card login-card"><h1>PO Bunker</h1>` +
			`<p class="subtitle">Purchase order dashboard</p>`
		if errorMessage != "" {
			out += `<div class="banner banner-error">` + templ.EscapeString(errorMessage) + `</div>`
		}
		out += `<form method="POST" action="/login" class="stack">` +
			`<label>Email<input type="email" name="email" required autofocus></label>` +
			`<label>Password<input type="password" name="password" required></label>` +
			`<button type="submit" class="btn btn-primary">Sign in</button>` +
			`</form></div></main>`
		_, err := io.WriteString(w, out)
		return err
	})
	return html.Page("Login - PO Bunker", body)
}
