package dto

type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type ContactStats struct {
	Total     int `json:"total"`
	Unreplied int `json:"unreplied"`
}

type DashboardStatsResponse struct {
	Bookings       BookingStats `json:"bookings"`
	Contacts       ContactStats `json:"contacts"`
	Properties     int          `json:"properties"`
	PublishedPosts int          `json:"published_posts"`
	Testimonials   int          `json:"testimonials"`
	Partners       int          `json:"partners"`
}
