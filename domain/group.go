package domain

// Group is a chat room with an unordered many-to-many member set.
// The member set is only ever grown through the add-members operation;
// it is never settable directly.
type Group struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Members []User `json:"members"`
}
