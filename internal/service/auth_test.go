package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opentransit/stationhub/internal/store"
	sqlitestore "github.com/opentransit/stationhub/internal/store/drivers/sqlite"
	"github.com/opentransit/stationhub/pkg/cryptox"
	"github.com/opentransit/stationhub/pkg/jwtx"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlitestore.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &AuthService{
		Store:   st,
		Encoder: cryptox.NewPasswordEncoder("test-password-secret"),
		Tokens:  jwtx.NewHS256("test-jwt-secret", time.Hour),
	}
}

func register(t *testing.T, svc *AuthService, username, email string) RegisterInput {
	t.Helper()

	in := RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        username,
		Email:           email,
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	return in
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        "azril",
		Email:           "azril@mail.com",
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	})
	require.NoError(t, err)

	require.NotEmpty(t, user.ID)
	require.False(t, user.IsActive)
	require.NotEmpty(t, user.ActivationCode)
	require.Equal(t, "user", user.Role.String())
	require.Equal(t, defaultProfilePicture, user.ProfilePicture)

	// The stored password is the deterministic digest, never the plaintext.
	require.NotEqual(t, "Azril123", user.Password)
	require.Equal(t, svc.Encoder.Encode("Azril123"), user.Password)
}

func TestRegister_Duplicate(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	register(t, svc, "azril", "azril@mail.com")

	_, err := svc.Register(ctx, RegisterInput{
		FullName:        "Someone Else",
		Username:        "azril",
		Email:           "other@mail.com",
		Password:        "Other123",
		ConfirmPassword: "Other123",
	})
	require.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(ctx, RegisterInput{
		FullName:        "Someone Else",
		Username:        "other",
		Email:           "azril@mail.com",
		Password:        "Other123",
		ConfirmPassword: "Other123",
	})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_InvalidPayload(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterInput{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestLogin_Lifecycle(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        "azril",
		Email:           "azril@mail.com",
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	})
	require.NoError(t, err)

	// Inactive accounts are invisible to login.
	_, err = svc.Login(ctx, "azril", "Azril123")
	require.ErrorIs(t, err, ErrUserNotFound)

	activated, err := svc.Activate(ctx, user.ActivationCode)
	require.NoError(t, err)
	require.True(t, activated.IsActive)

	// Activation is idempotent; the code stays redeemable.
	again, err := svc.Activate(ctx, user.ActivationCode)
	require.NoError(t, err)
	require.True(t, again.IsActive)

	// Login works by username and by email once active.
	token, err := svc.Login(ctx, "azril", "Azril123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	token, err = svc.Login(ctx, "azril@mail.com", "Azril123")
	require.NoError(t, err)

	claims, err := jwtx.NewHS256("test-jwt-secret", time.Hour).Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "user", claims.Role)
}

func TestLogin_WrongPasswordIsIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        "azril",
		Email:           "azril@mail.com",
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, user.ActivationCode)
	require.NoError(t, err)

	wrongPassword := svc.Login
	_, errWrong := wrongPassword(ctx, "azril", "Wrong123")
	_, errUnknown := wrongPassword(ctx, "nobody", "Azril123")

	require.ErrorIs(t, errWrong, ErrUserNotFound)
	require.ErrorIs(t, errUnknown, ErrUserNotFound)
	require.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestActivate_UnknownCode(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Activate(context.Background(), "no-such-code")
	require.ErrorIs(t, err, ErrActivationCodeNotFound)
}

func TestUpdateProfileAndPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        "azril",
		Email:           "azril@mail.com",
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, user.ActivationCode)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, "Azril A.", "avatar.png")
	require.NoError(t, err)
	require.Equal(t, "Azril A.", updated.FullName)
	require.Equal(t, "avatar.png", updated.ProfilePicture)
	require.Equal(t, user.Role, updated.Role)

	_, err = svc.UpdatePassword(ctx, user.ID, "Baru123", "Lain123")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "password does not match", ve.Message)

	_, err = svc.UpdatePassword(ctx, user.ID, "Baru123", "Baru123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "azril", "Azril123")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(ctx, "azril", "Baru123")
	require.NoError(t, err)
}

func TestMe_MissingAccountIsInternal(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Me(context.Background(), "nonexistent-id")
	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrNotFound)
}
