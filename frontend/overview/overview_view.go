package overview

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/data-center-bgp/po-bunker/frontend/shared/html"
	"github.com/data-center-bgp/po-bunker/frontend/shared/nav"
)

type ActivityRow struct {
	Action string
	Detail string
	At     string
}

type PageData struct {
	Nav         nav.TopNavData
	Email       string
	TotalOrders int
	FetchError  string
	Activity    []ActivityRow
}

func OverviewPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(data.Nav).Render(ctx, w); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`<main class="page"><div class="page-head"><h2>Overview</h2></div>`)
		if data.FetchError != "" {
			b.WriteString(`<div class="banner banner-error">` + templ.EscapeString(data.FetchError) + `</div>`)
		}

		b.WriteString(`<div class="stat-grid"><div class="card stat">` +
			`<p class="stat-label">Total Orders</p>` +
			fmt.Sprintf(`<p class="stat-value">%d</p>`, data.TotalOrders) +
			`</div><div class="card stat">` +
			`<p class="stat-label">Signed in as</p>` +
			`<p class="stat-value stat-small">` + templ.EscapeString(data.Email) + `</p>` +
			`</div></div>`)

		b.WriteString(`<div class="card"><h3>Recent Activity</h3>`)
		if len(data.Activity) == 0 {
			b.WriteString(`<p class="empty">No activity yet.</p>`)
		} else {
			b.WriteString(`<ul class="activity">`)
			for _, row := range data.Activity {
				b.WriteString(`<li><span class="strong">` + templ.EscapeString(row.Action) + `</span> ` +
					templ.EscapeString(row.Detail) + ` <span class="muted">` + templ.EscapeString(row.At) + `</span></li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div></main>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
	return html.Page("Overview - PO Bunker", body)
}
