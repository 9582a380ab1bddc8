package models

import "time"

// RepairSession represents a work order tracking a vehicle's visit, the
// assigned master and responsible, the parts and services used, and billing
type RepairSession struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"size:50;not null" json:"order_number"`
	DateStart     time.Time   `gorm:"not null" json:"date_start"`
	DateEnd       *time.Time  `json:"date_end"` // nullable, set when the session is closed
	Malfunctions  *string     `gorm:"size:255" json:"malfunctions"`
	OrderComment  *string     `gorm:"size:255" json:"order_comment"`
	TotalSum      int         `gorm:"not null" json:"total_sum"`
	PaidSum       int         `gorm:"not null" json:"paid_sum"`
	IfFinished    bool        `gorm:"not null" json:"if_finished"`
	VehicleID     uint        `gorm:"not null;index" json:"vehicle_id"` // foreign key to vehicles table
	Vehicle       Vehicle     `gorm:"foreignKey:VehicleID" json:"-"`
	ResponsibleID uint        `gorm:"not null;index" json:"responsible_id"` // foreign key to responsibles table
	Responsible   Responsible `gorm:"foreignKey:ResponsibleID" json:"-"`
	MasterID      uint        `gorm:"not null;index" json:"master_id"` // foreign key to masters table
	Master        Master      `gorm:"foreignKey:MasterID" json:"-"`

	// Association links, loaded by the controllers rather than GORM
	RepairParts      []RepairSessionPartLink `gorm:"-" json:"repair_parts"`
	ProvidedServices []uint                  `gorm:"-" json:"provided_services"`
}

// TableName specifies the table name for the RepairSession model
func (RepairSession) TableName() string {
	return "repairsessions"
}

// RepairSessionPart links a repair session to a used part with its quantity
type RepairSessionPart struct {
	RepairSessionID uint `gorm:"primaryKey;autoIncrement:false" json:"repair_session_id"`
	RepairPartID    uint `gorm:"primaryKey;autoIncrement:false" json:"repair_part_id"`
	Amount          int  `gorm:"not null;default:0" json:"amount"`
}

// TableName specifies the table name for the RepairSessionPart model
func (RepairSessionPart) TableName() string {
	return "repairsessions_repairparts"
}

// RepairSessionService links a repair session to a provided service
type RepairSessionService struct {
	RepairSessionID   uint `gorm:"primaryKey;autoIncrement:false" json:"repair_session_id"`
	ProvidedServiceID uint `gorm:"primaryKey;autoIncrement:false" json:"provided_service_id"`
}

// TableName specifies the table name for the RepairSessionService model
func (RepairSessionService) TableName() string {
	return "repairsessions_providedservices"
}

// RepairSessionPartLink is the part reference exchanged on the API surface
type RepairSessionPartLink struct {
	RepairPartID uint `json:"repair_part_id"`
	Amount       int  `json:"amount"`
}
