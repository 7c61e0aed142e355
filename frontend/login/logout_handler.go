package login

import (
	"log/slog"
	"net/http"

	"github.com/data-center-bgp/po-bunker/infrastructure/activity"
	"github.com/data-center-bgp/po-bunker/infrastructure/auth"
	"github.com/data-center-bgp/po-bunker/infrastructure/cache"
)

// LogoutHandler clears the stored session and returns to the login screen.
func LogoutHandler(sessions *auth.Manager, vessels *cache.VesselCache, activitySvc *activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session, ok := sessions.Session(); ok {
			activitySvc.Record(r.Context(), session.UserID, "session.logout", session.Email)
		}
		if err := sessions.Logout(r.Context()); err != nil {
			slog.Error("logout failed to clear token store", slog.Any("err", err))
		}
		vessels.Invalidate()
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
