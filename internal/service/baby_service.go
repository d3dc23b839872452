package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
)

type BabyService interface {
	Create(req dto.BabyCreateRequest) (*dto.BabyResponse, error)
	ListByUser(userID string) ([]dto.BabyResponse, error)
	GetByID(id string) (*dto.BabyResponse, error)
	Update(id string, req dto.BabyUpdateRequest) (*dto.BabyResponse, error)
	Delete(id string) error
}

type babyService struct {
	babyRepo repository.BabyRepository
}

func NewBabyService(babyRepo repository.BabyRepository) BabyService {
	return &babyService{babyRepo: babyRepo}
}

func (s *babyService) Create(req dto.BabyCreateRequest) (*dto.BabyResponse, error) {
	baby := model.Baby{
		UserID:   req.UserID,
		Nickname: req.Nickname,
		Birthday: req.Birthday,
	}
	if err := s.babyRepo.Create(&baby); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Create: failed to create baby profile")
		return nil, fmt.Errorf("failed to create baby profile: %w", err)
	}
	return s.toResponse(&baby)
}

func (s *babyService) ListByUser(userID string) ([]dto.BabyResponse, error) {
	babies, err := s.babyRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListByUser: failed to fetch baby profiles")
		return nil, fmt.Errorf("failed to fetch baby profiles: %w", err)
	}

	resp := make([]dto.BabyResponse, 0, len(babies))
	for _, baby := range babies {
		var item dto.BabyResponse
		if err := copier.Copy(&item, &baby); err != nil {
			return nil, fmt.Errorf("error preparing baby list response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *babyService) GetByID(id string) (*dto.BabyResponse, error) {
	baby, err := s.babyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBabyNotFound) {
			return nil, err
		}
		log.Error().Err(err).Str("babyID", id).Msg("GetByID: failed to fetch baby profile")
		return nil, fmt.Errorf("failed to fetch baby profile: %w", err)
	}
	return s.toResponse(baby)
}

func (s *babyService) Update(id string, req dto.BabyUpdateRequest) (*dto.BabyResponse, error) {
	baby, err := s.babyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBabyNotFound) {
			return nil, err
		}
		log.Error().Err(err).Str("babyID", id).Msg("Update: failed to fetch baby profile")
		return nil, fmt.Errorf("failed to fetch baby profile: %w", err)
	}

	baby.Nickname = req.Nickname
	baby.Birthday = req.Birthday
	if err := s.babyRepo.Update(baby); err != nil {
		log.Error().Err(err).Str("babyID", id).Msg("Update: failed to update baby profile")
		return nil, fmt.Errorf("failed to update baby profile: %w", err)
	}
	return s.toResponse(baby)
}

// Delete removes the profile and its assessment records together. Orphaned
// records were a known gap in the old system; the cascade closes it.
func (s *babyService) Delete(id string) error {
	if err := s.babyRepo.DeleteWithRecords(id); err != nil {
		if errors.Is(err, apperrors.ErrBabyNotFound) {
			return err
		}
		log.Error().Err(err).Str("babyID", id).Msg("Delete: failed to delete baby profile")
		return fmt.Errorf("failed to delete baby profile: %w", err)
	}
	log.Info().Str("babyID", id).Msg("Baby profile and its assessment records deleted")
	return nil
}

func (s *babyService) toResponse(baby *model.Baby) (*dto.BabyResponse, error) {
	var resp dto.BabyResponse
	if err := copier.Copy(&resp, baby); err != nil {
		return nil, fmt.Errorf("error preparing baby response: %w", err)
	}
	return &resp, nil
}
