package repositories

import (
	"errors"
	"time"

	"tripplanner_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Create(plan *models.Plan) error
	FindByID(id uint) (*models.Plan, error)
	FindByUserID(userID uint) ([]models.Plan, error)
	FindBySell(sell bool) ([]models.Plan, error)
	Update(id uint, fields map[string]interface{}) error
}

type PlanRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

func (r *PlanRepositoryImpl) FindByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) FindByUserID(userID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepositoryImpl) FindBySell(sell bool) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("sell = ?", sell).Find(&plans).Error
	return plans, err
}

func (r *PlanRepositoryImpl) Update(id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Plan{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
