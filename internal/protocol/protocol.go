// Package protocol defines the wire schema shared by the Orderly server and
// its clients: one JSON object per line in both directions. Requests carry a
// "type" discriminator; responses echo the functional area in their own
// "type" plus a success/failed status.
package protocol

// Request types.
const (
	TypeLogin      = "login"
	TypeSignup     = "signup"
	TypeFriendList = "friendlist"
	TypeUserInfo   = "user_info"
)

// Response types.
const (
	TypeAuthResponse       = "auth_response"
	TypeSignupResponse     = "signup_response"
	TypeFriendListResponse = "friendlist_response"
	TypeUserInfoResponse   = "user_info_response"
	TypeErrorResponse      = "error_response"
)

// Statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Friendlist actions.
const (
	ActionGet    = "get"
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionCount  = "count"
)

// Request is the single request envelope. Which fields are meaningful
// depends on Type; the rest stay empty.
type Request struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Action   string `json:"action,omitempty"`
	FriendID string `json:"friend_id,omitempty"`
}

// UserInfo is the public identity shape: never email, never hashes.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// StatusResponse is the {type,status,message} shape used by signup results,
// friendlist actions, failures and protocol errors.
type StatusResponse struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UserResponse carries an identity, for auth_response and user_info_response.
type UserResponse struct {
	Type   string    `json:"type"`
	Status string    `json:"status"`
	User   *UserInfo `json:"user"`
}

// FriendsResponse carries the friend list for action "get". Friends is
// always present, possibly empty.
type FriendsResponse struct {
	Type    string     `json:"type"`
	Status  string     `json:"status"`
	Friends []UserInfo `json:"friends"`
}

// Response is the union shape clients decode every reply into.
type Response struct {
	Type    string     `json:"type"`
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	User    *UserInfo  `json:"user,omitempty"`
	Friends []UserInfo `json:"friends,omitempty"`
}

// Failed builds a StatusResponse with the given response type and message.
func Failed(respType, message string) StatusResponse {
	return StatusResponse{Type: respType, Status: StatusFailed, Message: message}
}

// OK builds a success StatusResponse with the given response type and message.
func OK(respType, message string) StatusResponse {
	return StatusResponse{Type: respType, Status: StatusSuccess, Message: message}
}
