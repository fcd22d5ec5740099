package session

import "sharegeb/internal/model"

// Record is the server-held snapshot of a user's fields, established at
// login and cleared at logout. It caches the row as it looked at login
// time; it does not auto-refresh when the row changes, except where the
// profile operations explicitly rewrite it.
type Record struct {
	SessionID string `json:"-"`

	UserID     uint     `json:"user_id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	Avatar     string   `json:"avatar"`
	Rating     float64  `json:"rating"`
	RideCount  int      `json:"ride_count"`
	MemberRank string   `json:"member_rank"`
	Role       string   `json:"role"`
}

// Snapshot builds a Record from a user row.
func Snapshot(u *model.User) *Record {
	avatar := u.Avatar
	if avatar == "" {
		avatar = model.DefaultAvatar
	}

	return &Record{
		UserID:     u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Bio:        u.Bio,
		Interests:  u.InterestList(),
		Avatar:     avatar,
		Rating:     u.Rating,
		RideCount:  u.RideCount,
		MemberRank: u.MemberRank(),
		Role:       string(u.Role),
	}
}
