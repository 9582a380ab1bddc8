package models

// Difficulty levels accepted for a provided service
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ProvidedService represents a service from the station's catalog
type ProvidedService struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:50;not null" json:"name"`
	Category   string `gorm:"size:50;not null" json:"category"`
	Difficulty string `gorm:"size:20;not null" json:"difficulty"` // easy, medium or hard
}

// TableName specifies the table name for the ProvidedService model
func (ProvidedService) TableName() string {
	return "providedservices"
}
