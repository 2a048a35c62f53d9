package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"gorm.io/gorm"
)

// AuthService handles registration, login, token refresh and password reset.
// Token signing and password hashing are delegated to utils (golang-jwt and
// bcrypt); this service owns the persistence side: which refresh token is
// current, which reset digest is outstanding.
type AuthService struct {
	db *gorm.DB

	// sendResetEmail delivers the plaintext reset token; tests swap it out
	// so the flow can run without SES.
	sendResetEmail func(to, token string) error
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db, sendResetEmail: utils.SendResetEmail}
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *AuthService) Register(name, email, password, role string) (*models.User, AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, AuthTokens{}, fmt.Errorf("%w: email already registered", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, AuthTokens{}, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, AuthTokens{}, err
	}

	// Anything but an explicit "admin" registers as a regular user.
	if role != "admin" {
		role = "user"
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, AuthTokens{}, err
	}

	tokens, err := s.issueTokens(&user)
	if err != nil {
		return nil, AuthTokens{}, err
	}
	return &user, tokens, nil
}

func (s *AuthService) Login(email, password string) (*models.User, AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, AuthTokens{}, ErrUnauthorized
		}
		return nil, AuthTokens{}, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, AuthTokens{}, ErrUnauthorized
	}

	tokens, err := s.issueTokens(&user)
	if err != nil {
		return nil, AuthTokens{}, err
	}
	return &user, tokens, nil
}

// Refresh rotates the token pair. The incoming token must verify against the
// refresh secret AND match the one stored on the user row, so a token that
// was already rotated away is rejected even while its signature is valid.
func (s *AuthService) Refresh(refreshToken string) (AuthTokens, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, ErrUnauthorized
	}

	var user models.User
	if err := s.db.First(&user, claims.UserID).Error; err != nil {
		return AuthTokens{}, ErrUnauthorized
	}
	if user.RefreshToken != refreshToken {
		return AuthTokens{}, ErrUnauthorized
	}

	return s.issueTokens(&user)
}

// ForgotPassword issues a reset token and emails it. An unknown email is
// reported as success to the caller so the endpoint can't be used to probe
// which addresses have accounts.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, digest, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}

	user.ResetPasswordToken = digest
	user.ResetPasswordExpires = time.Now().Add(time.Hour)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return s.sendResetEmail(user.Email, token)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password required", ErrValidation)
	}

	digest := utils.HashResetToken(token)

	var user models.User
	err := s.db.
		Where("reset_password_token = ? AND reset_password_expires > ?", digest, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired token", ErrValidation)
		}
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = time.Time{}
	return s.db.Save(&user).Error
}

// issueTokens signs a fresh access/refresh pair and persists the refresh
// token, invalidating whichever one was stored before.
func (s *AuthService) issueTokens(user *models.User) (AuthTokens, error) {
	claims := utils.TokenClaims{UserID: user.ID, Email: user.Email, Role: user.Role}

	access, err := utils.GenerateAccessToken(claims)
	if err != nil {
		return AuthTokens{}, err
	}
	refresh, err := utils.GenerateRefreshToken(claims)
	if err != nil {
		return AuthTokens{}, err
	}

	user.RefreshToken = refresh
	if err := s.db.Save(user).Error; err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
