package models

// Responsible represents the employee responsible for a repair session
type Responsible struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:50;not null" json:"name"`
	Telephone string `gorm:"size:50;not null" json:"telephone"`
}

// TableName specifies the table name for the Responsible model
func (Responsible) TableName() string {
	return "responsibles"
}
