package entity

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAttendee Role = "attendee"
)

type User struct {
	ID        int64
	Username  string
	Role      Role
	CreatedAt time.Time
}

// Principal is the authenticated identity attached to every request by the
// session collaborator (JWT middleware). The core trusts it as already
// authenticated.
type Principal struct {
	UserID int64
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
