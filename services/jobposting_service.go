package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
)

// InterfaceJobPostingService 일손모집 공고 서비스 인터페이스
type InterfaceJobPostingService interface {
	GetAllJobPostings(status string) ([]models.JobPosting, error)
	GetJobPostingByID(id uint) (*models.JobPosting, error)
	CreateJobPosting(posting *models.JobPosting) error
	UpdateJobPosting(id uint, updates map[string]interface{}) (*models.JobPosting, error)
	DeleteJobPosting(id uint) error
}

// JobPostingService 일손모집 공고 CRUD를 처리
type JobPostingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewJobPostingService 새 일손모집 공고 서비스 생성
func NewJobPostingService(db *gorm.DB, cfg *config.Config) InterfaceJobPostingService {
	return &JobPostingService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllJobPostings 공고 목록을 최신순으로 조회 (상태 필터 지원)
func (s *JobPostingService) GetAllJobPostings(status string) ([]models.JobPosting, error) {
	query := s.DB.Model(&models.JobPosting{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var postings []models.JobPosting
	if err := query.Order("created_at DESC").Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

// GetJobPostingByID ID로 공고 조회
func (s *JobPostingService) GetJobPostingByID(id uint) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := s.DB.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("해당 일손모집 공고를 찾을 수 없습니다")
		}
		return nil, err
	}
	return &posting, nil
}

// CreateJobPosting 새 공고 생성
func (s *JobPostingService) CreateJobPosting(posting *models.JobPosting) error {
	if posting.Status == "" {
		posting.Status = "open"
	}
	return s.DB.Create(posting).Error
}

// UpdateJobPosting 공고 수정
func (s *JobPostingService) UpdateJobPosting(id uint, updates map[string]interface{}) (*models.JobPosting, error) {
	posting, err := s.GetJobPostingByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(posting).Updates(updates).Error; err != nil {
		return nil, err
	}
	return posting, nil
}

// DeleteJobPosting 공고 삭제
func (s *JobPostingService) DeleteJobPosting(id uint) error {
	result := s.DB.Delete(&models.JobPosting{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("해당 일손모집 공고를 찾을 수 없습니다")
	}
	return nil
}
