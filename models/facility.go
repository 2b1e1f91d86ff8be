package models

// Facility CSV로 가져온 노인복지시설 등록부 항목
type Facility struct {
	BaseModel
	Name              string  `gorm:"type:varchar(100)" json:"name"`
	Type              string  `gorm:"type:varchar(50);index" json:"type"`        // 시설구분
	ServiceType       string  `gorm:"type:varchar(50)" json:"serviceType"`       // 급여구분
	EstablishmentType string  `gorm:"type:varchar(50)" json:"establishmentType"` // 설립구분
	DesignationDate   string  `gorm:"type:varchar(20)" json:"designationDate"`   // 지정일자
	Address           string  `gorm:"type:varchar(200)" json:"address"`          // 도로명주소
	OldAddress        string  `gorm:"type:varchar(200)" json:"oldAddress"`       // 지번주소
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	PhoneNumber       string  `gorm:"type:varchar(30)" json:"phoneNumber"`
	UpdatedDate       string  `gorm:"type:varchar(20)" json:"updatedDate"` // 데이터기준일
	ImportID          string  `gorm:"type:varchar(36);index" json:"importId"`
}
