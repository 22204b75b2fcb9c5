//go:build integration
// +build integration

package test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	adminauth "github.com/maxwellflitton/adminauth"
	"github.com/maxwellflitton/adminauth/roles"
	"github.com/maxwellflitton/adminauth/secrets"
	"github.com/redis/go-redis/v9"
)

type fixtureDirectory struct {
	users map[string]*adminauth.User
	roles map[int64][]roles.Role
}

func (d *fixtureDirectory) GetByEmail(_ context.Context, email string) (*adminauth.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, adminauth.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (d *fixtureDirectory) GetByUUID(_ context.Context, uuid string) (*adminauth.User, error) {
	for _, user := range d.users {
		if user.UUID == uuid {
			u := *user
			return &u, nil
		}
	}
	return nil, adminauth.ErrUserNotFound
}

func (d *fixtureDirectory) GetRoles(_ context.Context, userID int64) ([]roles.Role, error) {
	return d.roles[userID], nil
}

func (d *fixtureDirectory) UpdateUUID(_ context.Context, email, uuid string) (bool, error) {
	user, ok := d.users[email]
	if !ok {
		return false, nil
	}
	user.UUID = uuid
	return true, nil
}

type plainVerifier struct{}

func (plainVerifier) Verify(hash, password string) (bool, error) {
	return hash == password, nil
}

func newIntegrationEngine(t *testing.T) (*adminauth.Engine, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	directory := &fixtureDirectory{
		users: map[string]*adminauth.User{
			"alice@example.com": {
				ID:           1,
				UUID:         "uuid-alice",
				Email:        "alice@example.com",
				Username:     "alice",
				PasswordHash: "correct-horse",
				Confirmed:    true,
			},
		},
		roles: map[int64][]roles.Role{1: {roles.Admin, roles.Worker}},
	}

	engine, err := adminauth.New().
		WithRedis(rdb).
		WithUserDirectory(directory).
		WithPasswordVerifier(plainVerifier{}).
		WithSecrets(secrets.Static{"SECRET_KEY": "integration-secret"}).
		Build()
	if err != nil {
		t.Fatalf("engine build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine, mr
}
