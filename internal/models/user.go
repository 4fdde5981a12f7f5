package models

import "time"

// User roles. Admins run the back office; agents upload listings from
// their dashboard.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// UserModel is an authenticated account (operator or agent).
type UserModel struct {
	Base
	Email         string     `json:"email"     gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"         gorm:"not null"`
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Avatar        string     `json:"avatar"`
	Role          string     `json:"role"      gorm:"default:agent;index"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a server-side login session; JWTs are bound to one row
// so revocation takes effect immediately.
type UserSession struct {
	Base
	UserID    string     `json:"user_id" gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"      gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
