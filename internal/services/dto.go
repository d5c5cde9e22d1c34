package services

// ResolveParams contains parameters for resolving repository coordinates
type ResolveParams struct {
	Authority string // Empty means the configured default authority
	Owner     string
	Repo      string
}

// StampParams contains parameters for creating an identity stamp
type StampParams struct {
	Email    string // Empty means settings user_email
	Name     string // Empty means settings user_name
	TimeZone string // IANA zone name; empty means settings time_zone, then the clock's zone
}
