package models

import "time"

const (
	RoleCustomer = "Customer"
	RoleBarber   = "Barber"
	RoleAdmin    = "Admin"
)

type User struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	ShopID *uint `json:"shop_id"`
	Shop   *Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop,omitempty"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;default:'Customer'" json:"role"`
	Bio   string `gorm:"size:255" json:"bio"`

	// Weekly open hours, barbers only. Ordered as published.
	Availability []AvailabilityRange `gorm:"foreignKey:BarberID" json:"availability,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsBarber() bool {
	return u.Role == RoleBarber
}
