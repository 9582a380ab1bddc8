package models

// RepairPart represents a spare part tracked at the station and in storage
type RepairPart struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:50;not null" json:"name"`
	AmountOnStation int    `gorm:"not null" json:"amount_on_station"`
	AmountOnStorage int    `gorm:"not null" json:"amount_on_storage"`
}

// TableName specifies the table name for the RepairPart model
func (RepairPart) TableName() string {
	return "repairparts"
}
