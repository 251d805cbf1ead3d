package model

// Report ; a user complaint against a feed.
type Report struct {
	Id         string `json:"reportId"`
	FeedId     string `json:"feedId,omitempty"`
	ReportedBy string `json:"reportedBy,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// ReportAction ; moderation decision submitted back for a report.
type ReportAction struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}
