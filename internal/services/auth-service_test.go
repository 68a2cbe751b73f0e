package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/pkg/config"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/service"
)

var testAuthConfig = config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}

func newAuthService(userRepo *fakeUserRepo, cacheRepo *fakeCacheRepo) AuthServiceInterface {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, cacheRepo, jwtSvc, testAuthConfig, zap.NewNop())
}

func hashedUser(id uint64, name, password, role string) entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return entities.User{ID: id, Name: name, Password: string(hashed), Role: role, IsActive: true}
}

func TestLoginWithDatabaseUser(t *testing.T) {
	userRepo := newFakeUserRepo(hashedUser(5, "sara", "secret123", entities.RoleNurse))
	svc := newAuthService(userRepo, newFakeCacheRepo())

	res, err := svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo(hashedUser(5, "sara", "secret123", entities.RoleNurse))
	svc := newAuthService(userRepo, newFakeCacheRepo())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginFallsBackToDemoUsersWhenStoreIsDown(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.findErr = errors.New("connection refused")
	svc := newAuthService(userRepo, newFakeCacheRepo())

	res, err := svc.Login(context.Background(), dto.LoginDTO{Name: "فني الأجهزة", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleTechnician, res.User.Role)

	res, err = svc.Login(context.Background(), dto.LoginDTO{Name: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, res.User.Role)

	// Demo credentials still require the right password.
	_, err = svc.Login(context.Background(), dto.LoginDTO{Name: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDemoUsersNotConsultedWhileStoreIsUp(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeCacheRepo())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Name: "admin", Password: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	userRepo := newFakeUserRepo(hashedUser(5, "sara", "secret123", entities.RoleNurse))
	cacheRepo := newFakeCacheRepo()
	svc := newAuthService(userRepo, cacheRepo)

	for i := 0; i < testAuthConfig.MaxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the right password is refused while locked out.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)
}

func TestLoginClearsAttemptsOnSuccess(t *testing.T) {
	userRepo := newFakeUserRepo(hashedUser(5, "sara", "secret123", entities.RoleNurse))
	cacheRepo := newFakeCacheRepo()
	svc := newAuthService(userRepo, cacheRepo)

	_, _ = svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "nope"})
	_, err := svc.Login(context.Background(), dto.LoginDTO{Name: "sara", Password: "secret123"})
	require.NoError(t, err)

	assert.Empty(t, cacheRepo.counters)
}

func TestRegisterHashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthService(userRepo, newFakeCacheRepo())

	user, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name: "new tech", Password: "plaintext", Role: entities.RoleTechnician, Department: "maintenance",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext")))
	assert.True(t, user.IsActive)
}

func TestRegisterIssuesTemporaryIdentityWhenStoreIsDown(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.createErr = errors.New("connection refused")
	svc := newAuthService(userRepo, newFakeCacheRepo())

	user, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name: "ممرضة جديدة", Password: "123456", Role: entities.RoleNurse, Department: "العناية المركزة",
	})
	require.NoError(t, err)

	assert.Equal(t, "ممرضة جديدة", user.Name)
	assert.Equal(t, entities.RoleNurse, user.Role)
	assert.GreaterOrEqual(t, user.ID, uint64(100))
	assert.Less(t, user.ID, uint64(1100))
	assert.Empty(t, userRepo.users)
}
