package domain

// Message is a text posted in a group. Likes start at zero and only ever
// grow; the increment is done atomically at the storage layer.
type Message struct {
	ID      int64  `json:"id"`
	GroupID int64  `json:"group_id"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}
