package models

// Actor is the already-authenticated identity attached to a request.
// Verification happens upstream; this layer only enforces roles.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // admin | manager | user
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

func (a Actor) CanManage() bool { return a.Role == "admin" || a.Role == "manager" }
