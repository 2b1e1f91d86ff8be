package models

import "time"

// SensorData 농장 센서에서 수집된 측정값 하나
type SensorData struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Location  string    `gorm:"type:varchar(50);index" json:"location"` // 구역 식별자 (예: deodeok-A)
	Type      string    `gorm:"type:varchar(30);index" json:"type"`     // moisture, co2, temperature 등
	Value     float64   `json:"value"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}
