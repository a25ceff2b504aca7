// Package domain contains the entities of the group-chat system.
// No transport, storage, or runtime logic should be added here.
package domain

// User is the authenticated principal of the system. The password hash is
// deliberately absent: it never leaves the repository layer.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
