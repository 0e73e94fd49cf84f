package models

import "time"

// AvailabilityRange is one recurring weekly open interval for a barber.
// DayOfWeek uses Sunday=0 .. Saturday=6. Times are "HH:MM" wall-clock
// strings; malformed or inverted ranges are kept as stored and simply
// yield no slots.
type AvailabilityRange struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_availability_barber_day" json:"barber_id"`

	DayOfWeek int    `gorm:"index:idx_availability_barber_day" json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
