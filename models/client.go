package models

// Client represents a client of the repair station
type Client struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:50;not null" json:"name"`
	Telephone string `gorm:"size:50;not null" json:"telephone"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
