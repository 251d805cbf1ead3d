package model

// Feed record ; platform content entry.
type Feed struct {
	Id        string `json:"feedId"`
	Title     string `json:"title,omitempty"`
	Category  string `json:"category,omitempty"`
	Creator   string `json:"createdBy,omitempty"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Likes     int    `json:"likes,omitempty"`
	Comments  int    `json:"comments,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Category of the feed catalogue.
type Category struct {
	Id   string `json:"categoryId"`
	Name string `json:"name"`
}

// FeedUpload ; multipart payload of the admin feed-upload operation.
type FeedUpload struct {
	Title    string
	Category string
	// Local media file path ; sent as the "file" part
	FilePath string
}
