package domain

type ProfileRole string

const (
	ProfileRoleSuperAdmin ProfileRole = "super_admin"
	ProfileRoleAdmin      ProfileRole = "admin"
	ProfileRoleViewer     ProfileRole = "viewer"
)

// Profile is an administrative identity keyed by the identity service's
// user id. Only super_admin passes the admin gate.
type Profile struct {
	UserID       string      `json:"user_id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Role         ProfileRole `json:"role"`
	PasswordHash string      `json:"-"`
	CreatedOn    string      `json:"created_on"`
}
