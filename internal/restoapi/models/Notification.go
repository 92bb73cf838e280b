package models

type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type NotificationListResponse struct {
	Data []*Notification `json:"data"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
