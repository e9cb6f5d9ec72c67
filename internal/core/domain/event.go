package domain

import "time"

// AuthAction names the operation an audit event records.
type AuthAction string

const (
	ActionSignIn AuthAction = "signin"
	ActionSignUp AuthAction = "signup"
)

// AuthEvent is an audit record of an authentication attempt. Events are
// written asynchronously; losing one on shutdown is acceptable, blocking a
// login on the audit store is not.
type AuthEvent struct {
	Username   string     `bson:"username"`
	Action     AuthAction `bson:"action"`
	Success    bool       `bson:"success"`
	RemoteAddr string     `bson:"remote_addr,omitempty"`
	Reason     string     `bson:"reason,omitempty"`
	Timestamp  time.Time  `bson:"timestamp"`
}
