package domain

import "time"

// Link maps a short code to its target URL along with its visit counters.
type Link struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	URL         string     `json:"url"`
	Visits      int64      `json:"visits"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastVisited *time.Time `json:"lastVisited"`
}

type ShortenRequest struct {
	URL string `json:"url"`
}

type ShortenResponse struct {
	Code     string `json:"code"`
	ShortURL string `json:"shortUrl"`
	URL      string `json:"url"`
}
