package models

// Friend is a friend-list entry: the target user's id and display name,
// joined from the users table. The underlying edge (user_id, friend_id) is
// directed and exists at most once per pair.
type Friend struct {
	ID       string
	Username string
}
