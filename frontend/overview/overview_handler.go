package overview

import (
	"log/slog"
	"net/http"

	sessioncontext "github.com/data-center-bgp/po-bunker/frontend/shared/context"
	"github.com/data-center-bgp/po-bunker/frontend/shared/nav"
	"github.com/data-center-bgp/po-bunker/infrastructure/activity"
	"github.com/data-center-bgp/po-bunker/infrastructure/backend"
)

// OverviewPageQueryHandler renders the landing page: the order-count stat
// plus recent operator activity.
func OverviewPageQueryHandler(client *backend.Client, activitySvc *activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{}
		if session, ok := sessioncontext.GetSessionFromContext(r.Context()); ok {
			data.Nav = nav.BuildTopNavData(session, "overview")
			data.Email = session.Email
		}

		// A one-row page is the cheapest way to get the total count.
		resp, err := client.ListOrders(r.Context(), 1, 1)
		if err != nil {
			data.FetchError = err.Error()
		} else {
			data.TotalOrders = resp.TotalCount
		}

		entries, err := activitySvc.Recent(r.Context(), 10)
		if err != nil {
			slog.Error("load recent activity failed", slog.Any("err", err))
		}
		for _, entry := range entries {
			data.Activity = append(data.Activity, ActivityRow{
				Action: entry.Action,
				Detail: entry.Detail,
				At:     entry.CreatedAt.Format("Jan 2, 2006 15:04"),
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OverviewPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render overview page", http.StatusInternalServerError)
		}
	}
}
