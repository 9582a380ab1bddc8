package models

// Vehicle represents a client's vehicle
type Vehicle struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Brand           string `gorm:"size:50;not null" json:"brand"`
	Model           string `gorm:"size:50;not null" json:"model"`
	ManufactureYear int    `gorm:"not null" json:"manufacture_year"`
	ClientID        uint   `gorm:"not null;index" json:"client_id"` // foreign key to clients table
	Client          Client `gorm:"foreignKey:ClientID" json:"-"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
