package model

// DashboardMetrics ; headline counters of the admin dashboard.
type DashboardMetrics struct {
	Users         int `json:"users"`
	Creators      int `json:"creators"`
	Feeds         int `json:"feeds"`
	Subscriptions int `json:"subscriptions"`
	Reports       int `json:"reports"`
}

// MonthlyRegistration ; one point of the user-registration chart.
type MonthlyRegistration struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// SubscriptionRatio ; subscribed vs free user split.
type SubscriptionRatio struct {
	Subscribed   int `json:"subscribed"`
	Unsubscribed int `json:"unsubscribed"`
}
