package models

// LocalFoodStore 로컬푸드 직매장 정보
type LocalFoodStore struct {
	BaseModel
	Number    int     `gorm:"index" json:"number"`
	Name      string  `gorm:"type:varchar(100)" json:"name"`
	Address   string  `gorm:"type:varchar(200)" json:"address"`
	Phone     string  `gorm:"type:varchar(30)" json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Items     string  `gorm:"type:varchar(200)" json:"items"` // 취급 품목
}
