package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"
	"healthconnect/pkg/jwt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// dummyHash is compared against when the username does not exist, so login
// takes the same time whether or not the account is real. Unknown user and
// wrong password are deliberately indistinguishable to the caller.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginResult struct {
	SessionID string
	Response  *dto.LoginResponse
}

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

type authUsecase struct {
	log            *logrus.Logger
	userRepo       repository.UserRepository
	sessionService service.SessionService
	jwtService     *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionService service.SessionService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		userRepo:       userRepo,
		sessionService: sessionService,
		jwtService:     jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Friendly pre-check; the unique indexes still catch races.
	existing, err := u.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.Infof("User registered: %s", user.Username)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	user, err := u.userRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}

	sessionID, err := u.sessionService.Create(ctx, session)
	if err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID.Hex(), user.Username, user.Email, sessionID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	u.log.Infof("User logged in: %s", user.Username)
	return &LoginResult{
		SessionID: sessionID,
		Response: &dto.LoginResponse{
			User:        converter.UserToResponse(user),
			AccessToken: accessToken,
			ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		},
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessionService.Destroy(ctx, sessionID)
}

func (u *authUsecase) CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	return u.sessionService.Get(ctx, sessionID)
}
