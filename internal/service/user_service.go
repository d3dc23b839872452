package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	// Login creates the user on first sight of an OpenID and refreshes
	// name, avatar and login time on every later call.
	Login(req dto.LoginRequest) (*dto.UserResponse, error)
	GetByOpenID(openID string) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Login(req dto.LoginRequest) (*dto.UserResponse, error) {
	loginTime := time.Now()
	if req.LoginTime != nil {
		loginTime = *req.LoginTime
	}

	user, err := s.userRepo.FindByOpenID(req.OpenID)
	switch {
	case err == nil:
		user.NickName = req.NickName
		user.AvatarURL = req.AvatarURL
		user.LoginTime = loginTime
		if err := s.userRepo.Update(user); err != nil {
			log.Error().Err(err).Str("openID", req.OpenID).Msg("Login: failed to update user")
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	case errors.Is(err, apperrors.ErrUserNotFound):
		user = &model.User{
			OpenID:    req.OpenID,
			NickName:  req.NickName,
			AvatarURL: req.AvatarURL,
			LoginTime: loginTime,
		}
		if err := s.userRepo.Create(user); err != nil {
			log.Error().Err(err).Str("openID", req.OpenID).Msg("Login: failed to create user")
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		log.Info().Str("openID", req.OpenID).Str("userID", user.ID).Msg("Login: new user registered")
	default:
		log.Error().Err(err).Str("openID", req.OpenID).Msg("Login: failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetByOpenID(openID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByOpenID(openID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		log.Error().Err(err).Str("openID", openID).Msg("GetByOpenID: failed to fetch user")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
