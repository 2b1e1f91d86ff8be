package models

import "time"

// JobPosting 일손모집 공고
type JobPosting struct {
	BaseModel
	Title       string     `gorm:"type:varchar(200)" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	FarmName    string     `gorm:"type:varchar(100)" json:"farmName"`
	Location    string     `gorm:"type:varchar(200)" json:"location"`
	WorkType    string     `gorm:"type:varchar(50)" json:"workType"` // 수확, 파종, 제초 등
	Wage        string     `gorm:"type:varchar(50)" json:"wage"`
	Contact     string     `gorm:"type:varchar(50)" json:"contact"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `gorm:"type:varchar(20);default:open;index" json:"status"` // open, closed
}
