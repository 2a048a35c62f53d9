package services

import (
	"testing"
	"time"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTokenSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	user, tokens, err := svc.Register("Alice", "Alice@Example.com", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, "s3cret", user.Password)

	_, _, err = svc.Login("alice@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Login("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	_, _, err := svc.Register("Alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	_, _, err = svc.Register("Impostor", "ALICE@example.com", "other", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterRoleDefaultsToUser(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	user, _, err := svc.Register("Mallory", "mallory@example.com", "pw", "superuser")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	admin, _, err := svc.Register("Root", "root@example.com", "pw", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestRefreshRotatesTokens(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	_, tokens, err := svc.Register("Alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	// Token contents embed issue time at second granularity; make sure the
	// rotated pair differs.
	time.Sleep(1100 * time.Millisecond)

	rotated, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The old refresh token was rotated away and is no longer accepted.
	_, err = svc.Refresh(tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Refresh(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResetPassword(t *testing.T) {
	setTokenSecrets(t)
	db := testDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register("Alice", "alice@example.com", "oldpw", "")
	require.NoError(t, err)

	user.ResetPasswordToken = utils.HashResetToken("plain-token")
	user.ResetPasswordExpires = time.Now().Add(time.Hour)
	require.NoError(t, db.Save(user).Error)

	require.NoError(t, svc.ResetPassword("plain-token", "newpw"))

	_, _, err = svc.Login("alice@example.com", "newpw")
	require.NoError(t, err)
	_, _, err = svc.Login("alice@example.com", "oldpw")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Single-use: the token is cleared after a successful reset.
	err = svc.ResetPassword("plain-token", "again")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	setTokenSecrets(t)
	db := testDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register("Alice", "alice@example.com", "oldpw", "")
	require.NoError(t, err)

	user.ResetPasswordToken = utils.HashResetToken("stale")
	user.ResetPasswordExpires = time.Now().Add(-time.Minute)
	require.NoError(t, db.Save(user).Error)

	assert.ErrorIs(t, svc.ResetPassword("stale", "newpw"), ErrValidation)
}

func TestForgotPasswordUnknownEmailSucceeds(t *testing.T) {
	setTokenSecrets(t)
	svc := NewAuthService(testDB(t))

	// No account enumeration: an unknown address is not an error.
	require.NoError(t, svc.ForgotPassword("ghost@example.com"))
}

func TestForgotPasswordKnownEmail(t *testing.T) {
	setTokenSecrets(t)
	db := testDB(t)
	svc := NewAuthService(db)

	var sentTo, sentToken string
	svc.sendResetEmail = func(to, token string) error {
		sentTo = to
		sentToken = token
		return nil
	}

	_, _, err := svc.Register("Alice", "alice@example.com", "oldpw", "")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("Alice@Example.com"))
	assert.Equal(t, "alice@example.com", sentTo)
	require.NotEmpty(t, sentToken)

	// Only the digest is persisted, never the plaintext token.
	var stored models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&stored).Error)
	assert.Equal(t, utils.HashResetToken(sentToken), stored.ResetPasswordToken)
	assert.NotEqual(t, sentToken, stored.ResetPasswordToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ResetPasswordExpires, time.Minute)

	// The mailed token drives the reset end to end.
	require.NoError(t, svc.ResetPassword(sentToken, "newpw"))
	_, _, err = svc.Login("alice@example.com", "newpw")
	require.NoError(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	setTokenSecrets(t)
	db := testDB(t)
	authSvc := NewAuthService(db)
	userSvc := NewUserService(db)

	user, _, err := authSvc.Register("Alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	weight := 72.5
	updated, err := userSvc.UpdateProfile(user.ID, ProfileUpdate{
		Name:        "Alice B",
		WeightKg:    &weight,
		FitnessGoal: "gain muscle",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, 72.5, updated.WeightKg)
	assert.Equal(t, "gain muscle", updated.FitnessGoal)
	// Untouched fields keep their values.
	assert.Equal(t, "alice@example.com", updated.Email)

	// Password change re-hashes and old password stops working.
	_, err = userSvc.UpdateProfile(user.ID, ProfileUpdate{Password: "brand-new"})
	require.NoError(t, err)
	_, _, err = authSvc.Login("alice@example.com", "brand-new")
	require.NoError(t, err)
	_, _, err = authSvc.Login("alice@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
