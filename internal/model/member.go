package model

// Member is a directory entry as exposed to authenticated callers.
type Member struct {
	Membername string `json:"membername"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Disabled   bool   `json:"disabled"`
}

// MemberInDB carries the stored credential alongside the public profile.
type MemberInDB struct {
	Member
	HashedPassword string `json:"-"`
}
