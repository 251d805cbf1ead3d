package nav

// Item of the console navigation tree.
type Item struct {
	// Human-readable caption
	Title string `json:"title"`
	// Permission tag required for role=Child_Admin ; Admin sees all
	Tag string `json:"tag,omitempty"`
	// Console (sub)command the item resolves to
	Command string `json:"command,omitempty"`
	// Child entries ; a group renders only if at least one survives
	Items []Item `json:"items,omitempty"`
	// Render expanded
	Expanded bool `json:"expanded,omitempty"`
}

// Group reports whether the item is a section header with children.
func (e *Item) Group() bool {
	return len(e.Items) > 0
}

// Menu is the canonical navigation tree.
// Order here is the render order.
func Menu() []Item {
	return []Item{
		{
			Title:   "Dashboard",
			Tag:     "dashboard",
			Command: "dashboard",
		},
		{
			Title: "Admin",
			Tag:   "admin",
			Items: []Item{
				{Title: "Admin Profile", Tag: "adminProfile", Command: "profile show"},
				{Title: "ChildAdmin Creation", Tag: "childAdminCreation", Command: "admins create"},
			},
		},
		{
			Title: "User Profile",
			Tag:   "userProfile",
			Items: []Item{
				{Title: "User Detail", Tag: "userDetail", Command: "users list"},
				{Title: "User Analytics", Tag: "userAnalytics", Command: "users analytics"},
				{Title: "User Feed Reports", Tag: "userFeedReports", Command: "users feeds"},
			},
		},
		{
			Title:   "Creator Profile",
			Tag:     "creatorProfile",
			Command: "creators",
		},
		{
			Title:   "Feeds Info",
			Tag:     "feedsInfo",
			Command: "feeds list",
		},
		{
			Title:   "Subscriptions Info",
			Tag:     "subscriptionsInfo",
			Command: "plans list",
		},
		{
			Title:   "Reports",
			Tag:     "reports",
			Command: "reports list",
		},
	}
}
