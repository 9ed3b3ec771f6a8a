package users

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"grahafitness_backend/internals/constants"
	authHelper "grahafitness_backend/internals/features/users/auth/helper"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/helpers/logx"
)

// UserSeed: password kosong → pakai SEED_DEFAULT_PASSWORD.
type UserSeed struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

// Store: repository.AuthRepository memenuhi ini.
type Store interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *authModel.UserModel) error
}

var DefaultUsers = []UserSeed{
	{UserName: "superadmin", Role: string(constants.RoleSuperAdmin), DisplayName: "Super Admin"},
	{UserName: "admin", Role: string(constants.RoleAdmin), DisplayName: "Admin"},
}

// LoadSeedFile: file tidak ada → DefaultUsers.
func LoadSeedFile(path string) ([]UserSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultUsers, nil
		}
		return nil, err
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return nil, err
	}
	return inputs, nil
}

// SeedUsers idempoten: username yang sudah ada dilewati. Mengembalikan jumlah insert.
func SeedUsers(ctx context.Context, store Store, seeds []UserSeed, defaultPassword string) (int, error) {
	log := logx.Module("seed")
	created := 0

	for _, data := range seeds {
		role, err := constants.ParseRole(data.Role)
		if err != nil {
			log.WithField("user_name", data.UserName).Warn("❌ role tidak valid, dilewati")
			continue
		}

		exists, err := store.UsernameExists(ctx, data.UserName)
		if err != nil {
			return created, err
		}
		if exists {
			log.Debugf("ℹ️ User '%s' sudah ada, dilewati.", data.UserName)
			continue
		}

		plain := data.Password
		if plain == "" {
			plain = defaultPassword
		}
		// 🔐 Hash password sebelum disimpan
		hashed, err := authHelper.HashPassword(plain)
		if err != nil {
			return created, err
		}

		u := authModel.UserModel{
			ID:          uuid.New(),
			UserName:    data.UserName,
			Password:    hashed,
			Role:        role,
			DisplayName: data.DisplayName,
		}
		if err := store.CreateUser(ctx, &u); err != nil {
			log.WithError(err).Errorf("❌ Gagal insert user '%s'", data.UserName)
			continue
		}
		created++
		log.Infof("✅ Berhasil insert user '%s' (%s)", data.UserName, role)
	}
	return created, nil
}
