package ui

import (
	"hamgaman/internal/nav"
	"hamgaman/internal/sidebar"
)

// Page is the content page selected by the current route.
type Page int

const (
	PageMyCourses Page = iota
	PageManage
	PageUsers
)

func (p Page) String() string {
	switch p {
	case PageMyCourses:
		return "MyCourses"
	case PageManage:
		return "Manage"
	case PageUsers:
		return "Users"
	default:
		return "Unknown"
	}
}

// Route returns the route that shows p.
func (p Page) Route() string {
	switch p {
	case PageManage:
		return sidebar.RouteManage
	case PageUsers:
		return sidebar.RouteUsers
	default:
		return sidebar.RouteMyCourses
	}
}

// PageForRoute maps a route to its page. The root route shows the learner's courses.
func PageForRoute(route string) (Page, bool) {
	switch route {
	case sidebar.RouteMyCourses, nav.RootRoute:
		return PageMyCourses, true
	case sidebar.RouteManage:
		return PageManage, true
	case sidebar.RouteUsers:
		return PageUsers, true
	}
	return PageMyCourses, false
}
