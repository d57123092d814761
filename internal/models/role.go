package models

// Role selects which account table and which transport slot a request
// operates on. There are exactly two roles; anything else is rejected
// at the guard boundary.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleTrainer Role = "trainer"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAthlete || r == RoleTrainer
}

// CookieName returns the role-specific cookie carrying the access token.
// The two slots are independent: a browser may hold both at once.
func (r Role) CookieName() string {
	switch r {
	case RoleTrainer:
		return "trainer_access_token"
	default:
		return "athlete_access_token"
	}
}

// LandingPath is where a successful login for this role redirects to.
func (r Role) LandingPath() string {
	switch r {
	case RoleTrainer:
		return "/trainer/dashboard"
	default:
		return "/athlete/home"
	}
}
