package models

// WelfareFacility 복지시설 정보
type WelfareFacility struct {
	BaseModel
	Name         string  `gorm:"type:varchar(100)" json:"name"`
	FacilityType string  `gorm:"type:varchar(50);index" json:"facilityType"` // 경로당, 복지관 등
	Address      string  `gorm:"type:varchar(200)" json:"address"`
	Phone        string  `gorm:"type:varchar(30)" json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Capacity     int     `json:"capacity"`
}
