package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

func newAccountFixture() (*services.AccountService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	return services.NewAccountService(users, testLogger()), users
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, users := newAccountFixture()

	saved, err := svc.Register(context.Background(), &models.User{
		Name:     "Ravi Kumar",
		Username: "ravi",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Empty(t, saved.Password)
	stored := users.users[0].Password
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "secret123", stored)
}

func TestRegister_DuplicateUsernameIsConflict(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "secret123",
	})
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.User{
		Name: "Other Ravi", Username: "ravi", Password: "different",
	})
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestRegister_RequiresNameUsernamePassword(t *testing.T) {
	svc, users := newAccountFixture()

	_, err := svc.Register(context.Background(), &models.User{Username: "ravi"})

	assert.True(t, utils.IsKind(err, utils.KindInvalidInput))
	assert.Empty(t, users.users)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newAccountFixture()
	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "secret123",
	})
	assert.NoError(t, err)

	user, err := svc.Login(context.Background(), "ravi", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "ravi", user.Username)
	assert.Empty(t, user.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAccountFixture()
	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "secret123",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "ravi", "wrong")
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestResetPassword_OverwritesAndLoginsWithNew(t *testing.T) {
	svc, _ := newAccountFixture()
	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "old-secret",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.ResetPassword(context.Background(), "ravi", "new-secret"))

	_, err = svc.Login(context.Background(), "ravi", "old-secret")
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))

	_, err = svc.Login(context.Background(), "ravi", "new-secret")
	assert.NoError(t, err)
}

func TestUpdateProfile_PartialReplacement(t *testing.T) {
	svc, _ := newAccountFixture()
	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "secret123",
		Address: "Pune", VehicleModel: "City",
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), "ravi", &models.User{
		Phone: "9999999999",
	})

	assert.NoError(t, err)
	assert.Equal(t, "9999999999", updated.Phone)
	assert.Equal(t, "Pune", updated.Address)
	assert.Equal(t, "City", updated.VehicleModel)
}

func TestGetImage_MissingImageIsNotFound(t *testing.T) {
	svc, _ := newAccountFixture()
	_, err := svc.Register(context.Background(), &models.User{
		Name: "Ravi", Username: "ravi", Password: "secret123",
	})
	assert.NoError(t, err)

	_, err = svc.GetImage(context.Background(), "ravi")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
