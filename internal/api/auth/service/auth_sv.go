package authService

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/auth"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
	jwtPkg "ShotFormGolang/pkg/jwt"
)

const accessTokenTTL = 24 * time.Hour

func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(ctx, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Email already registered")
		return auth.ErrEmailAlreadyInUse
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()

	user := entity.User{
		ID:        ULID,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Password mismatch")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueToken(user)
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	config := s.googleProvider.GetConfig()

	authURL, err := url.Parse(config.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("client_id", config.ClientID)
	params.Add("redirect_uri", config.RedirectURL)
	params.Add("response_type", "code")
	params.Add("scope", strings.Join(config.Scopes, " "))
	authURL.RawQuery = params.Encode()

	return authURL, nil
}

func (s *authService) UserLoginGoogle(ctx context.Context, userInfo []byte) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var info auth.GoogleUserInfo
	if err := json.Unmarshal(userInfo, &info); err != nil || info.Email == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid Google user payload")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginUserResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginUserResponse{}, err
	}

	return s.issueToken(user)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("User not found")
		}
		return entity.User{}, err
	}

	return user, nil
}

func (s *authService) issueToken(user entity.User) (auth.LoginUserResponse, error) {
	token, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
