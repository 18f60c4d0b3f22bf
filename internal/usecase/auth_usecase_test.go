package usecase

import (
	"context"
	"testing"

	"healthconnect/config"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"})
}

func newAuthUsecase(userRepo *MockUserRepository, sessions *MockSessionService) AuthUsecase {
	return NewAuthUsecase(logrus.New(), userRepo, sessions, testJWTService())
}

func hashedUser(username, email, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		ID:       bson.NewObjectID(),
		Username: username,
		Email:    email,
		Password: string(hash),
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	u := newAuthUsecase(userRepo, &MockSessionService{})

	user, err := u.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jane",
		Email:           "Jane@X.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	// Email is normalized before persisting.
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, int32(1), userRepo.CreateCallCount)
}

func TestRegister_DuplicateUsernameRejectedWithoutSecondRecord(t *testing.T) {
	existing := hashedUser("jane", "jane@x.com", "secret123")
	userRepo := &MockUserRepository{
		FindByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*entity.User, error) {
			if username == "jane" {
				return existing, nil
			}
			return nil, nil
		},
	}
	u := newAuthUsecase(userRepo, &MockSessionService{})

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jane",
		Email:           "other@x.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, int32(0), userRepo.CreateCallCount)
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *entity.User
	userRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		},
	}
	u := newAuthUsecase(userRepo, &MockSessionService{})

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jane",
		Email:           "jane@x.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	user := hashedUser("jane", "jane@x.com", "secret123")
	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return user, nil
		},
	}
	u := newAuthUsecase(userRepo, &MockSessionService{})

	_, err := u.Login(context.Background(), &dto.LoginRequest{Username: "jane", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserGetsSameError(t *testing.T) {
	u := newAuthUsecase(&MockUserRepository{}, &MockSessionService{})

	_, err := u.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})

	// Unknown user and wrong password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EstablishesSession(t *testing.T) {
	user := hashedUser("jane", "jane@x.com", "secret123")
	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			if username == "jane" {
				return user, nil
			}
			return nil, nil
		},
	}
	sessions := &MockSessionService{}
	u := newAuthUsecase(userRepo, sessions)

	result, err := u.Login(context.Background(), &dto.LoginRequest{Username: "jane", Password: "secret123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.NotEmpty(t, result.Response.AccessToken)

	// The session query now resolves the caller's identity.
	session, err := u.CurrentSession(context.Background(), result.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, "jane", session.Username)
	assert.Equal(t, "jane@x.com", session.Email)
}

func TestLogout_DestroysSession(t *testing.T) {
	sessions := &MockSessionService{Sessions: map[string]*entity.Session{
		"sid-1": {Username: "jane"},
	}}
	u := newAuthUsecase(&MockUserRepository{}, sessions)

	assert.NoError(t, u.Logout(context.Background(), "sid-1"))
	assert.NotContains(t, sessions.Sessions, "sid-1")
}

func TestLogout_ReportsDestructionFailure(t *testing.T) {
	sessions := &MockSessionService{
		DestroyFunc: func(ctx context.Context, sessionID string) error {
			return assert.AnError
		},
	}
	u := newAuthUsecase(&MockUserRepository{}, sessions)

	assert.Error(t, u.Logout(context.Background(), "sid-1"))
}
