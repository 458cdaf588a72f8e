package models

// Staff roles as stored in the users table. The values are the Arabic labels the
// dashboard displays, so they double as the wire format.
const (
	RoleAdmin      = "مدير"
	RoleController = "عضو كنترول"
	RoleProctor    = "مراقب"
)

// User is a staff account. Password is write-only: list and login responses
// never carry it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"-"`
}
