package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"RentRate/internal/auth"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

const testSecret = "test-secret"

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:         "test@example.com",
		Username:      "testuser",
		Password:      "TestPass123",
		TermsAccepted: true,
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates account and issues token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Email == "test@example.com" && u.Username == "testuser" && u.PasswordHash != ""
		})).Return(&User{ID: 1, Email: "test@example.com", Username: "testuser"}, nil)

		svc := NewUserService(repo, testSecret)
		resp, err := svc.Register(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.User.ID)
		require.NotEmpty(t, resp.Token)

		claims, err := auth.ValidateToken(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("stores a bcrypt hash, not the password", func(t *testing.T) {
		repo := new(MockUserRepository)
		var stored *User
		repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*User)
		}).Return(&User{ID: 1}, nil)

		svc := NewUserService(repo, testSecret)
		_, err := svc.Register(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.NotEqual(t, "TestPass123", stored.PasswordHash)
		assert.True(t, auth.CheckPassword(stored.PasswordHash, "TestPass123"))
	})

	t.Run("requires terms acceptance", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), testSecret)
		req := validRegisterRequest()
		req.TermsAccepted = false

		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrTermsNotAccepted)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), testSecret)
		req := validRegisterRequest()
		req.Email = "invalid-email"

		_, err := svc.Register(context.Background(), req)
		var invalidEmail *InvalidEmailError
		assert.ErrorAs(t, err, &invalidEmail)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), testSecret)

		for _, password := range []string{"short1A", "weakpass123", "WEAKPASSWORD", "NoDigitsHere"} {
			req := validRegisterRequest()
			req.Password = password

			_, err := svc.Register(context.Background(), req)
			var weak *WeakPasswordError
			assert.ErrorAs(t, err, &weak, "password %q should be rejected", password)
		}
	})

	t.Run("normalizes the email before storing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Email == "test@example.com"
		})).Return(&User{ID: 1, Email: "test@example.com"}, nil)

		svc := NewUserService(repo, testSecret)
		req := validRegisterRequest()
		req.Email = "  Test@Example.COM "

		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrEmailAlreadyRegistered)

		svc := NewUserService(repo, testSecret)
		_, err := svc.Register(context.Background(), validRegisterRequest())

		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("TestPass123")
	require.NoError(t, err)
	account := &User{ID: 7, Email: "test@example.com", PasswordHash: hash}

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", mock.Anything, "test@example.com").Return(account, nil)

		svc := NewUserService(repo, testSecret)
		resp, err := svc.Login(context.Background(), LoginRequest{Email: "test@example.com", Password: "TestPass123"})

		require.NoError(t, err)
		claims, err := auth.ValidateToken(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
	})

	t.Run("wrong password yields ErrInvalidCredentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", mock.Anything, "test@example.com").Return(account, nil)

		svc := NewUserService(repo, testSecret)
		_, err := svc.Login(context.Background(), LoginRequest{Email: "test@example.com", Password: "WrongPass123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields ErrInvalidCredentials, not not-found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, ErrUserNotFound)

		svc := NewUserService(repo, testSecret)
		_, err := svc.Login(context.Background(), LoginRequest{Email: "missing@example.com", Password: "TestPass123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
