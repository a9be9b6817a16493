package usecase

import (
	authdomain "statusbar-backend/internal/auth/domain"
	authdto "statusbar-backend/internal/auth/dto"
)

// ProfileInitializer is called after a successful registration so the
// new user starts with a default profile.
type ProfileInitializer func(userID, name string) error

// AuthUsecase defines the business logic interface for authentication
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
	SetProfileInitializer(init ProfileInitializer)
}
