package models

// Session is the single logged-in identity of the process. At most one
// session exists at a time; it is created on login and dropped on logout.
//
// IsAdmin is captured at login time and is not refreshed if the account's
// role changes while the session is open. This staleness mirrors the
// legacy behavior and is relied upon by the session manager's contract.
type Session struct {
	Username string
	IsAdmin  bool
}
