package sidebar

import "hamgaman/internal/nav"

// Icons used by the stock menus.
const (
	IconDefault = "○"
	IconUsers   = "⚙"
	IconCourses = "▶"
	IconSchool  = "✎"
	IconLink    = "↗"
)

// Badge is a small label after an item.
type Badge struct {
	Content string
	Color   string // empty uses the theme's secondary color
}

// NavItem is one sidebar entry. Items are caller data and never mutated.
type NavItem struct {
	Label       string
	Icon        string
	Destination nav.Destination
	Badge       *Badge
	Selected    bool
	Disabled    bool
}

// Menu is a titled group of items.
type Menu struct {
	SubHeading string
	Items      []NavItem
}

// Routes of the console pages.
const (
	RouteUsers     = "/users-setting"
	RouteManage    = "/manage-course"
	RouteMyCourses = "/my-courses"
)

// DefaultMenus returns the console's navigation.
func DefaultMenus() []Menu {
	return []Menu{
		{
			SubHeading: "مدیریت",
			Items: []NavItem{
				{Label: "مدیریت کاربران", Icon: IconUsers, Destination: nav.Internal{Route: RouteUsers}, Badge: &Badge{Content: "6"}},
				{Label: "مدیریت دوره ها", Icon: IconCourses, Destination: nav.Internal{Route: RouteManage}},
			},
		},
		{
			SubHeading: "دوره ها",
			Items: []NavItem{
				{Label: "دوره های من", Icon: IconSchool, Destination: nav.Internal{Route: RouteMyCourses}},
			},
		},
	}
}

// LinkMenu builds a menu from configured links. Returns false if there are none.
func LinkMenu(heading string, links []Link) (Menu, bool) {
	if len(links) == 0 {
		return Menu{}, false
	}
	m := Menu{SubHeading: heading}
	for _, l := range links {
		icon := l.Icon
		if icon == "" {
			icon = IconLink
		}
		m.Items = append(m.Items, NavItem{Label: l.Label, Icon: icon, Destination: nav.Parse(l.Href, l.Target)})
	}
	return m, true
}

// Link is an extra entry from configuration.
type Link struct {
	Label  string
	Icon   string
	Href   string
	Target string
}

// WithSelected returns copies of menus with Selected set on the items whose
// internal route equals route, and cleared elsewhere.
func WithSelected(menus []Menu, route string) []Menu {
	out := make([]Menu, len(menus))
	for i, m := range menus {
		out[i] = Menu{SubHeading: m.SubHeading, Items: make([]NavItem, len(m.Items))}
		for j, it := range m.Items {
			in, ok := it.Destination.(nav.Internal)
			it.Selected = ok && in.Route == route
			out[i].Items[j] = it
		}
	}
	return out
}

func flatten(menus []Menu) []NavItem {
	var items []NavItem
	for _, m := range menus {
		items = append(items, m.Items...)
	}
	return items
}
