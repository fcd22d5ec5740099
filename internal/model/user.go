package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

// DefaultAvatar is the sentinel filename used whenever a user has no
// uploaded avatar.
const DefaultAvatar = "basic_avatar.png"

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FullName         string     `gorm:"size:255;not null" json:"full_name"`
	Email            string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone            string     `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	PasswordHash     string     `gorm:"size:255;not null" json:"-"`
	Role             Role       `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ResetToken       *string    `gorm:"size:255" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	Bio              string     `gorm:"type:text" json:"bio"`
	Interests        string     `gorm:"size:255" json:"interests"` // comma-joined, order preserved
	Avatar           string     `gorm:"size:255;default:'basic_avatar.png'" json:"avatar"`
	Rating           float64    `gorm:"default:0" json:"rating"`
	RideCount        int        `gorm:"default:0" json:"ride_count"`

	Driver         *Driver         `gorm:"constraint:OnDelete:CASCADE" json:"driver,omitempty"`
	RidePassengers []RidePassenger `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notifications  []Notification  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// MemberRank derives the loyalty tier from the ride count. It is never
// stored; callers recompute it on every read.
func (u *User) MemberRank() string {
	return MemberRank(u.RideCount)
}

func MemberRank(rideCount int) string {
	switch {
	case rideCount < 7:
		return "Iron"
	case rideCount < 20:
		return "Bronze"
	case rideCount < 40:
		return "Silver"
	case rideCount < 70:
		return "Gold"
	case rideCount < 100:
		return "Diamond"
	default:
		return "VIP"
	}
}

// InterestList splits the stored comma-joined interests back into the
// ordered list the user submitted. Empty storage yields an empty list.
func (u *User) InterestList() []string {
	return SplitInterests(u.Interests)
}

func SplitInterests(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}

	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func JoinInterests(interests []string) string {
	trimmed := make([]string, 0, len(interests))
	for _, i := range interests {
		trimmed = append(trimmed, strings.TrimSpace(i))
	}
	return strings.Join(trimmed, ",")
}

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverInactive  DriverStatus = "inactive"
)

type Driver struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	LicenseNumber string       `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	Status        DriverStatus `gorm:"size:20;default:'available'" json:"status"`

	Vehicles []Vehicle `gorm:"constraint:OnDelete:CASCADE" json:"vehicles,omitempty"`
	Rides    []Ride    `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Vehicle struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DriverID    uint   `gorm:"not null" json:"driver_id"`
	Make        string `gorm:"size:50;not null" json:"make"`
	Model       string `gorm:"size:50;not null" json:"model"`
	Year        int    `gorm:"not null" json:"year"`
	PlateNumber string `gorm:"size:20;uniqueIndex;not null" json:"plate_number"`
}
