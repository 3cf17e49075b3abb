package service

import (
	"context"
	"errors"
	"time"

	"sideb/config"
	"sideb/dao"
	"sideb/pkg/jwt"
	"sideb/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResp, error)
}

type AuthService struct {
	AdminDAO *dao.AdminDAO
	Config   *config.Config
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResp, error) {
	admin, err := s.AdminDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	expiresIn := s.Config.Jwt.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		admin.ID,
		admin.Email,
		"access",
		time.Duration(expiresIn)*time.Second,
	)
	if err != nil {
		return nil, err
	}

	return &types.LoginResp{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		DisplayName: admin.DisplayName,
	}, nil
}
