package auth

import (
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/noah-isme/backend-apotek/internal/common"
)

// User is one of the two fixed storefront accounts. There is no
// registration; the account list is part of the build.
type User struct {
	Username     string
	PasswordHash string
	Role         string
	Name         string
}

// SeedUsers returns the fixed accounts with freshly derived argon2id hashes.
func SeedUsers() (map[string]User, error) {
	accounts := []struct {
		username string
		password string
		role     string
		name     string
	}{
		{username: "admin", password: "admin123", role: common.RoleAdmin, name: "Admin User"},
		{username: "customer", password: "customer123", role: common.RoleCustomer, name: "Customer User"},
	}

	users := make(map[string]User, len(accounts))
	for _, account := range accounts {
		hash, err := argon2id.CreateHash(account.password, argon2id.DefaultParams)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", account.username, err)
		}
		users[account.username] = User{
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
			Name:         account.name,
		}
	}
	return users, nil
}
