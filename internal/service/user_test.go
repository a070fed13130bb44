package service

import (
	"context"
	"testing"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	return NewUserService(repo), repo
}

func TestUserService_Create_Success(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "  Thandi  ",
		Email: "thandi@example.com",
		Phone: "0712345678",
		Role:  domain.RolePassenger,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Thandi", user.Name)
	assert.Equal(t, domain.RolePassenger, user.Role)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc, _ := newUserService(t)

	cases := map[string]domain.CreateUserInput{
		"empty name":  {Email: "a@b.com", Role: domain.RolePassenger},
		"empty email": {Name: "Thandi", Role: domain.RolePassenger},
		"bad role":    {Name: "Thandi", Email: "a@b.com", Role: "dispatcher"},
	}

	for name, input := range cases {
		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Thandi",
		Email: "taken@example.com",
		Role:  domain.RolePassenger,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Update_ProfileFieldsOnly(t *testing.T) {
	svc, repo := newUserService(t)

	existing := &domain.User{
		ID: "u1", Name: "Thandi", Email: "thandi@example.com",
		Role: domain.RolePassenger,
	}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{
		Name:  "Thandiwe",
		Phone: "0798765432",
	})

	require.NoError(t, err)
	assert.Equal(t, "Thandiwe", user.Name)
	assert.Equal(t, "0798765432", user.Phone)
	// email and role are fixed
	assert.Equal(t, "thandi@example.com", user.Email)
	assert.Equal(t, domain.RolePassenger, user.Role)
}

func TestUserService_Update_EmptyName(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{Name: " "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "u1"))
}
