package authService

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"

	"ShotFormGolang/internal/api/auth"
	authRepository "ShotFormGolang/internal/api/auth/repository"
	"ShotFormGolang/internal/entity"
	"ShotFormGolang/pkg/bcrypt"
	"ShotFormGolang/pkg/google"
	"ShotFormGolang/pkg/utils"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(ctx context.Context, userInfo []byte) (auth.LoginUserResponse, error)
	GetProfile(ctx context.Context, userID string) (entity.User, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	googleProvider google.ItfGoogle,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: repo,
		googleProvider: googleProvider,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
