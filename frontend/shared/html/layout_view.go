package html

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page wraps body in the document shell with the app stylesheet and the
// CSRF form script.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := "<!doctype html><html><head><meta charset=\"utf-8\">" +
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">" +
			"<title>" + templ.EscapeString(title) + "</title>" +
			"<link rel=\"stylesheet\" href=\"/assets/app.css\"></head><body>"
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, CSRFFormScript()+"</body></html>")
		return err
	})
}
