package tui

// route identifies a page of the admin panel.
type route int

const (
	routeLogin route = iota
	routeDashboard
	routeUsers
	routeShopkeepers
	routeAdmins
	routeShops
	routeOrders
	routeNotifications
)

// routeNames maps page names (the --open flag) to routes.
var routeNames = map[string]route{
	"login":         routeLogin,
	"dashboard":     routeDashboard,
	"users":         routeUsers,
	"shopkeepers":   routeShopkeepers,
	"admins":        routeAdmins,
	"shops":         routeShops,
	"orders":        routeOrders,
	"notifications": routeNotifications,
}

// routeByName resolves a page name. Unknown names land on the dashboard:
// a catch-all, not an error.
func routeByName(name string) route {
	if r, ok := routeNames[name]; ok {
		return r
	}
	return routeDashboard
}

// RouteByName resolves a page name from the command line. The value only
// travels straight into NewApp.
func RouteByName(name string) route {
	return routeByName(name)
}

// resolveRoute is the route guard. It is consulted on every navigation and
// holds no state of its own: without authentication every protected target
// collapses to the login page; once authenticated, the login page itself
// redirects to the dashboard.
func resolveRoute(target route, authenticated bool) route {
	if !authenticated {
		return routeLogin
	}
	if target == routeLogin {
		return routeDashboard
	}
	return target
}
