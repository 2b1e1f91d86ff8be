package models

import "time"

// Weather 정기 수집된 날씨 실황 이력
type Weather struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Temperature   float64   `json:"temperature"`
	TempMin       float64   `json:"temp_min"`
	TempMax       float64   `json:"temp_max"`
	Humidity      int       `json:"humidity"`
	Rainfall      float64   `json:"rainfall"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection int       `json:"windDirection"`
	Description   string    `gorm:"type:varchar(100)" json:"description"`
	Icon          string    `gorm:"type:varchar(20)" json:"icon"`
	ObservedAt    time.Time `json:"observed_at"`
	CreatedAt     time.Time `json:"created_at"`
}
