package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "chave-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUserAndValidateToken(t *testing.T) {
	service, userRepo := newTestService(t)

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       true,
		RoleID:       1,
	}

	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	token, err := service.LoginUser("  Ana@Example.com ", "Senha@Forte1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	user := &domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	_, err := service.LoginUser("ana@example.com", "senha-errada")
	require.Error(t, err)
}

func TestLoginUserDisabledAccount(t *testing.T) {
	service, userRepo := newTestService(t)

	user := &domain.User{
		ID:           9,
		Email:        "inativo@example.com",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       false,
	}

	userRepo.EXPECT().GetUserByEmail("inativo@example.com").Return(user, nil)

	_, err := service.LoginUser("inativo@example.com", "Senha@Forte1")
	require.Error(t, err)
}

func TestLoginUserNotFound(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

	_, err := service.LoginUser("ninguem@example.com", "Senha@Forte1")
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("nao-e-um-token")
	require.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha forte", password: "Senha@123", wantErr: false},
		{name: "Muito curta", password: "S@1a", wantErr: true},
		{name: "Sem maiúscula", password: "senha@123", wantErr: true},
		{name: "Sem minúscula", password: "SENHA@123", wantErr: true},
		{name: "Sem número", password: "Senha@abc", wantErr: true},
		{name: "Sem caractere especial", password: "Senha1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	admin := &domain.User{ID: 1, RoleID: 1, Active: true}
	target := &domain.User{ID: 2, RoleID: 3, Active: true}

	userRepo.EXPECT().GetUserByID(1).Return(admin, nil)
	userRepo.EXPECT().GetUserByID(2).Return(target, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	password, err := service.GenerateStrongPassword(1, 2)
	require.NoError(t, err)

	// A senha gerada deve passar pela própria validação de força.
	assert.GreaterOrEqual(t, len(password), 12)
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestGenerateStrongPasswordRequiresAdmin(t *testing.T) {
	service, userRepo := newTestService(t)

	operator := &domain.User{ID: 3, RoleID: 2, Active: true}
	userRepo.EXPECT().GetUserByID(3).Return(operator, nil)

	_, err := service.GenerateStrongPassword(3, 2)
	require.Error(t, err)
}
