package model

import "time"

type Discount struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountPercentage float64   `gorm:"type:decimal(5,2);not null" json:"discount_percentage"`
	MaxDiscountAmount  float64   `gorm:"type:decimal(10,2);not null;default:0" json:"max_discount_amount"`
	ValidFrom          time.Time `gorm:"type:date;not null" json:"valid_from"`
	ValidTo            time.Time `gorm:"type:date;not null" json:"valid_to"`
	MaxUsage           int       `gorm:"default:1" json:"max_usage"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`

	Usages []DiscountUsage `gorm:"foreignKey:DiscountID;constraint:OnDelete:CASCADE" json:"-"`
}

type DiscountUsage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RidePassengerID uint      `gorm:"not null" json:"ride_passenger_id"`
	DiscountID      uint      `gorm:"not null" json:"discount_id"`
	UsedAt          time.Time `gorm:"autoCreateTime" json:"used_at"`
}
