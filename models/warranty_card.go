package models

import "time"

// WarrantyCard asserts a warranty period for a service performed on a vehicle
type WarrantyCard struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	StartDate         time.Time       `gorm:"not null" json:"start_date"`
	EndDate           time.Time       `gorm:"not null" json:"end_date"`
	VehicleID         uint            `gorm:"not null;index" json:"vehicle_id"` // foreign key to vehicles table
	Vehicle           Vehicle         `gorm:"foreignKey:VehicleID" json:"-"`
	ProvidedServiceID uint            `gorm:"not null;index" json:"provided_service_id"` // foreign key to providedservices table
	ProvidedService   ProvidedService `gorm:"foreignKey:ProvidedServiceID" json:"-"`
}

// TableName specifies the table name for the WarrantyCard model
func (WarrantyCard) TableName() string {
	return "warrantiescards"
}
