package repository

import (
	"errors"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/gorm"
)

type BabyRepository interface {
	Create(baby *model.Baby) error
	Update(baby *model.Baby) error
	FindByID(id string) (*model.Baby, error)
	FindByUserID(userID string) ([]model.Baby, error)
	// DeleteWithRecords removes the baby profile together with all of its
	// assessment records in one transaction, so a profile deletion can never
	// leave orphaned records behind.
	DeleteWithRecords(id string) error
}

type babyRepository struct {
	db *gorm.DB
}

func NewBabyRepository(db *gorm.DB) BabyRepository {
	return &babyRepository{db: db}
}

func (r *babyRepository) Create(baby *model.Baby) error {
	return r.db.Create(baby).Error
}

func (r *babyRepository) Update(baby *model.Baby) error {
	return r.db.Save(baby).Error
}

func (r *babyRepository) FindByID(id string) (*model.Baby, error) {
	var baby model.Baby
	if err := r.db.First(&baby, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBabyNotFound
		}
		return nil, err
	}
	return &baby, nil
}

func (r *babyRepository) FindByUserID(userID string) ([]model.Baby, error) {
	var babies []model.Baby
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&babies).Error; err != nil {
		return nil, err
	}
	return babies, nil
}

func (r *babyRepository) DeleteWithRecords(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("baby_id = ?", id).Delete(&model.Assessment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Baby{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrBabyNotFound
		}
		return nil
	})
}
