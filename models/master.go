package models

// Master represents a mechanic performing repair work
type Master struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:50;not null" json:"name"`
	Telephone string `gorm:"size:50;not null" json:"telephone"`
}

// TableName specifies the table name for the Master model
func (Master) TableName() string {
	return "masters"
}
