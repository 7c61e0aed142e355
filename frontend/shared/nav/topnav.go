package nav

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/data-center-bgp/po-bunker/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Email  string
	Active string
}

func BuildTopNavData(session models.Session, active string) TopNavData {
	return TopNavData{Email: session.Email, Active: active}
}

type link struct {
	Href  string
	Label string
	Key   string
}

var links = []link{
	{Href: "/dashboard/overview", Label: "Overview", Key: "overview"},
	{Href: "/dashboard/orders", Label: "Orders", Key: "orders"},
	{Href: "/dashboard/exports/orders.csv", Label: "Export CSV", Key: "exports"},
}

// TopNav renders the header bar with section links and the logout control.
func TopNav(data TopNavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := `<header class="topnav"><span class="brand">PO Bunker</span><nav>`
		for _, l := range links {
			cls := "navlink"
			if l.Key == data.Active {
				cls += " active"
			}
			out += `<a class="` + cls + `" href="` + l.Href + `">` + templ.EscapeString(l.Label) + `</a>`
		}
		out += `</nav><div class="navuser"><span class="email">` + templ.EscapeString(data.Email) + `</span>` +
			`<form method="POST" action="/logout"><button type="submit" class="btn btn-outline">Logout</button></form>` +
			`</div></header>`
		_, err := io.WriteString(w, out)
		return err
	})
}
