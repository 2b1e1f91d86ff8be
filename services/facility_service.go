package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// InterfaceFacilityService 노인복지시설 등록부 서비스 인터페이스
type InterfaceFacilityService interface {
	GetAllFacilities() ([]models.Facility, error)
	GetFacilitiesByType(facilityType string) ([]models.Facility, error)
	SearchByRadius(latitude, longitude, radiusKm float64) ([]models.Facility, error)
	ImportFromCSV() (string, int, error)
}

// FacilityService 노인복지시설 등록부 조회와 CSV 가져오기를 처리
type FacilityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFacilityService 새 시설 서비스 생성
func NewFacilityService(db *gorm.DB, cfg *config.Config) InterfaceFacilityService {
	return &FacilityService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllFacilities 전체 시설 목록 조회
func (s *FacilityService) GetAllFacilities() ([]models.Facility, error) {
	var facilities []models.Facility
	if err := s.DB.Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

// GetFacilitiesByType 시설구분별 조회
func (s *FacilityService) GetFacilitiesByType(facilityType string) ([]models.Facility, error) {
	var facilities []models.Facility
	if err := s.DB.Where("type = ?", facilityType).Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

// SearchByRadius 지정 좌표에서 radiusKm 이내의 시설 검색
func (s *FacilityService) SearchByRadius(latitude, longitude, radiusKm float64) ([]models.Facility, error) {
	facilities, err := s.GetAllFacilities()
	if err != nil {
		return nil, err
	}

	nearby := make([]models.Facility, 0)
	for _, facility := range facilities {
		if utils.HaversineKm(latitude, longitude, facility.Latitude, facility.Longitude) <= radiusKm {
			nearby = append(nearby, facility)
		}
	}
	return nearby, nil
}

// ImportFromCSV EUC-KR로 인코딩된 공공데이터 CSV를 읽어 시설
// 등록부를 교체한다. 가져오기 배치 ID와 적재 건수를 반환한다.
func (s *FacilityService) ImportFromCSV() (string, int, error) {
	file, err := os.Open(s.Config.FacilityCSV)
	if err != nil {
		return "", 0, fmt.Errorf("CSV 파일을 찾을 수 없습니다: %w", err)
	}
	defer file.Close()

	// 공공데이터 CSV는 EUC-KR 인코딩으로 배포된다
	reader := csv.NewReader(transform.NewReader(file, korean.EUCKR.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", 0, fmt.Errorf("CSV 파일 읽기 오류: %w", err)
	}
	if len(records) < 2 {
		return "", 0, errors.New("가져올 데이터가 없습니다")
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[name] = i
	}

	importID := uuid.NewString()
	facilities := make([]models.Facility, 0, len(records)-1)
	for _, record := range records[1:] {
		field := func(name string) string {
			idx, ok := header[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		latitude, latErr := strconv.ParseFloat(field("위도"), 64)
		longitude, lonErr := strconv.ParseFloat(field("경도"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		facility := models.Facility{
			Name:              field("시설명"),
			Type:              field("시설구분"),
			ServiceType:       field("급여구분"),
			EstablishmentType: field("설립구분"),
			DesignationDate:   field("지정일자"),
			Address:           field("소재지도로명주소"),
			OldAddress:        field("소재지지번주소"),
			Latitude:          latitude,
			Longitude:         longitude,
			PhoneNumber:       field("전화번호"),
			UpdatedDate:       field("데이터기준일"),
			ImportID:          importID,
		}
		if facility.Name == "" || facility.Type == "" || facility.ServiceType == "" {
			continue
		}
		facilities = append(facilities, facility)
	}

	if len(facilities) == 0 {
		return "", 0, errors.New("가져올 데이터가 없습니다")
	}

	// 기존 등록부를 비우고 새 배치로 교체
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Facility{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(facilities, 100).Error
	})
	if err != nil {
		return "", 0, err
	}

	config.Info("시설 데이터 가져오기 완료: %d건 (배치 %s)", len(facilities), importID)
	return importID, len(facilities), nil
}
