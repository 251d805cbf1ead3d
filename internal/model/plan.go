package model

// PlanLimits ; feature limits object of a subscription plan.
type PlanLimits struct {
	DownloadLimit int  `json:"downloadLimit"`
	AdFree        bool `json:"adFree"`
	DeviceLimit   int  `json:"deviceLimit"`
}

// Plan ; subscription plan record.
type Plan struct {
	Id           string     `json:"planId,omitempty"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	DurationDays int        `json:"durationDays"`
	PlanType     string     `json:"planType,omitempty"`
	Description  string     `json:"description,omitempty"`
	Limits       PlanLimits `json:"limits"`
	IsActive     bool       `json:"isActive"`
}
