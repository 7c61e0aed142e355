package login

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/data-center-bgp/po-bunker/infrastructure/activity"
	"github.com/data-center-bgp/po-bunker/infrastructure/auth"
	"github.com/data-center-bgp/po-bunker/infrastructure/backend"
)

// GetLoginScreenHandler renders the login screen.
func GetLoginScreenHandler(w http.ResponseWriter, r *http.Request) {
	errorMessage := r.URL.Query().Get("error")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := GetLoginScreen(errorMessage).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render login screen", http.StatusInternalServerError)
		return
	}
}

// CreateLoginHandler authenticates against the order backend and stores the
// session triple.
func CreateLoginHandler(client *backend.Client, sessions *auth.Manager, activitySvc *activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		if email == "" || password == "" {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("email and password are required"), http.StatusSeeOther)
			return
		}

		resp, err := client.Login(r.Context(), email, password)
		if err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		if err := sessions.Login(r.Context(), resp.AccessToken, resp.UserID, resp.Login); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("failed to persist session"), http.StatusSeeOther)
			return
		}
		activitySvc.Record(r.Context(), resp.UserID, "session.login", resp.Login)

		http.Redirect(w, r, "/dashboard/orders", http.StatusSeeOther)
	}
}
