package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	exportspage "github.com/data-center-bgp/po-bunker/frontend/exports"
	"github.com/data-center-bgp/po-bunker/frontend/login"
	orderspage "github.com/data-center-bgp/po-bunker/frontend/orders"
	overviewpage "github.com/data-center-bgp/po-bunker/frontend/overview"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.Backend, s.Sessions, s.Activity))
	s.router.Post("/logout", login.LogoutHandler(s.Sessions, s.Vessels, s.Activity))
}

// RegisterDashboardRoutes registers the authenticated dashboard pages.
func (s *Server) RegisterDashboardRoutes(r chi.Router) chi.Router {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard/orders", http.StatusSeeOther)
	})

	r.Get("/overview", overviewpage.OverviewPageQueryHandler(s.Backend, s.Activity))

	r.Get("/orders", orderspage.OrdersPageQueryHandler(s.Backend, s.Vessels))
	r.Post("/orders", orderspage.CreateOrderCommandHandler(s.Backend, s.Vessels, s.Activity))

	r.Get("/exports/orders.csv", exportspage.OrdersExportCSVHandler(s.Backend))
	r.Get("/exports/orders/{id}.pdf", exportspage.OrderVoucherPDFHandler(s.Backend))

	return r
}
