package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store/memory"
)

func seedUser(t *testing.T, username, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		ID:           1,
		Username:     username,
		Email:        username + "@example.com",
		Name:         username,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "s3cret")}})

	resp, err := svc.Users.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	require.True(t, resp.Success)

	login := resp.Data.(models.LoginResponse)
	require.NotEmpty(t, login.Token)
	require.Equal(t, int64(1), login.UserID)
	require.Equal(t, "alice", login.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "s3cret")}})

	resp, err := svc.Users.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Invalid username or password", resp.Message)
	require.Nil(t, resp.Data)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{})

	resp, err := svc.Users.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "x"})
	require.NoError(t, err)
	require.False(t, resp.Success)
	// Same message for unknown user and wrong password.
	require.Equal(t, "Invalid username or password", resp.Message)
}

func TestRegister(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{})
	ctx := context.Background()

	resp, err := svc.Users.Register(ctx, models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Name: "Bob", Password: "hunter2",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	user := resp.Data.(models.User)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEqual(t, "hunter2", user.PasswordHash)

	// The new account can log in right away.
	login, err := svc.Users.Login(ctx, models.LoginRequest{Username: "bob", Password: "hunter2"})
	require.NoError(t, err)
	require.True(t, login.Success)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "x")}})

	resp, err := svc.Users.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "y",
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Username already exists", resp.Message)
}

func TestUserUpdate_Partial(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "x")}})

	resp, err := svc.Users.Update(context.Background(), 1, models.UpdateUserRequest{Name: ptr("Alice B.")})
	require.NoError(t, err)
	require.True(t, resp.Success)

	user := resp.Data.(models.User)
	require.Equal(t, "Alice B.", user.Name)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestWithdraw(t *testing.T) {
	svc, st := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "s3cret")}})
	ctx := context.Background()

	resp, err := svc.Users.Withdraw(ctx, 1, "wrong")
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Password does not match", resp.Message)

	resp, err = svc.Users.Withdraw(ctx, 1, "s3cret")
	require.NoError(t, err)
	require.True(t, resp.Success)

	users, err := st.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	// Withdrawn accounts no longer show up as assignable.
	avail, err := svc.Users.Available(ctx)
	require.NoError(t, err)
	require.Empty(t, avail.Data.([]models.User))
}

func TestMe(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{Users: []models.User{seedUser(t, "alice", "x")}})

	resp, err := svc.Users.Me(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Data.(models.User).Username)

	resp, err = svc.Users.Me(context.Background(), 99)
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "User not found", resp.Message)
}
