package model

// User record of the platform, as listed by the admin API.
type User struct {
	Id           string `json:"userId"`
	UserName     string `json:"userName"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AvatarURL    string `json:"profileAvatar,omitempty"`
	IsBlocked    bool   `json:"isBlocked,omitempty"`
	IsSubscribed bool   `json:"isSubscribed,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Creator record ; a content-producing user account.
type Creator struct {
	Id        string `json:"creatorId"`
	UserName  string `json:"userName"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"profileAvatar,omitempty"`
	Followers int    `json:"followers,omitempty"`
	FeedCount int    `json:"feedCount,omitempty"`
	IsBlocked bool   `json:"isBlocked,omitempty"`
}

// UserAnalytics ; per-user engagement counters, server-computed.
type UserAnalytics struct {
	UserId     string `json:"userId"`
	Feeds      int    `json:"feeds,omitempty"`
	Following  int    `json:"following,omitempty"`
	Liked      int    `json:"likedFeeds,omitempty"`
	Disliked   int    `json:"dislikedFeeds,omitempty"`
	Commented  int    `json:"commentedFeeds,omitempty"`
	Shared     int    `json:"sharedFeeds,omitempty"`
	Downloaded int    `json:"downloadedFeeds,omitempty"`
	Hidden     int    `json:"hiddenFeeds,omitempty"`
}

// AnalyticsFilter ; optional date/type window for analytics queries.
type AnalyticsFilter struct {
	StartDate string
	EndDate   string
	Type      string
}

// ReferralTree ; the two-column level rendering of a user's referral chain.
// Entirely server-supplied ; level 0 means the user has not started earning.
type ReferralTree struct {
	User       *User   `json:"user,omitempty"`
	Level      int     `json:"level"`
	LeftUsers  []*User `json:"leftUsers,omitempty"`
	RightUsers []*User `json:"rightUsers,omitempty"`

	TotalEarned         float64 `json:"totalEarned,omitempty"`
	TotalWithdrawn      float64 `json:"totalWithdrawn,omitempty"`
	PendingWithdrawable float64 `json:"pendingWithdrawable,omitempty"`
}

// Fixed depth of the referral tree rendering.
const ReferralMaxLevel = 10
