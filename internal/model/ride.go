package model

import "time"

type RideStatus string

const (
	RideRequested RideStatus = "requested"
	RideAccepted  RideStatus = "accepted"
	RideOngoing   RideStatus = "ongoing"
	RideCompleted RideStatus = "completed"
	RideCancelled RideStatus = "cancelled"
)

// Ride status is intended to only move forward
// (requested -> accepted -> ongoing -> completed|cancelled).
type Ride struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	DriverID           *uint      `json:"driver_id"` // nulled when the driver row is deleted
	Status             RideStatus `gorm:"size:20;default:'requested'" json:"status"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancellationReason string     `gorm:"size:255" json:"cancellation_reason,omitempty"`

	Passengers   []RidePassenger `gorm:"constraint:OnDelete:CASCADE" json:"passengers,omitempty"`
	Ratings      []Rating        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ChatMessages []ChatMessage   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type PassengerStatus string

const (
	PassengerRequested PassengerStatus = "requested"
	PassengerOnboard   PassengerStatus = "onboard"
	PassengerCompleted PassengerStatus = "completed"
	PassengerCancelled PassengerStatus = "cancelled"
)

type RidePassenger struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	RideID          uint            `gorm:"not null" json:"ride_id"`
	UserID          uint            `gorm:"not null" json:"user_id"`
	PickupLocation  string          `gorm:"size:255;not null" json:"pickup_location"`
	DropoffLocation string          `gorm:"size:255;not null" json:"dropoff_location"`
	DistanceKm      float64         `gorm:"type:decimal(5,2);default:0;not null" json:"distance_km"`
	Fare            float64         `gorm:"type:decimal(10,2);not null" json:"fare"`
	Status          PassengerStatus `gorm:"size:20;default:'requested'" json:"status"`
	JoinedAt        time.Time       `gorm:"autoCreateTime" json:"joined_at"`

	Payments       []Payment       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DiscountUsages []DiscountUsage `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentWallet     PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	RidePassengerID uint          `gorm:"not null" json:"ride_passenger_id"`
	Amount          float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod   PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
}

// Rating is unique per (ride, rater, ratee): a rater rates a given ratee
// at most once per ride.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RideID    uint      `gorm:"not null;uniqueIndex:uniq_rating" json:"ride_id"`
	RaterID   uint      `gorm:"not null;uniqueIndex:uniq_rating" json:"rater_id"`
	RateeID   uint      `gorm:"not null;uniqueIndex:uniq_rating" json:"ratee_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Rater *User `gorm:"foreignKey:RaterID;constraint:OnDelete:CASCADE" json:"rater,omitempty"`
	Ratee *User `gorm:"foreignKey:RateeID;constraint:OnDelete:CASCADE" json:"ratee,omitempty"`
}

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null" json:"sender_id"`
	ReceiverID uint      `gorm:"not null" json:"receiver_id"`
	RideID     uint      `gorm:"not null" json:"ride_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	SentAt     time.Time `gorm:"autoCreateTime" json:"sent_at"`

	Sender   *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
}
