package seeds

import (
	"context"
	"time"

	"gorm.io/gorm"

	authRepo "grahafitness_backend/internals/features/users/auth/repository"
	"grahafitness_backend/internals/helpers/logx"
	users "grahafitness_backend/internals/seeds/users"
)

const usersSeedFile = "internals/seeds/users/data_users.json"

// RunAllSeeds dipanggil saat startup setelah migrasi.
func RunAllSeeds(db *gorm.DB, defaultPassword string) {
	log := logx.Module("seed")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	//* User
	seedList, err := users.LoadSeedFile(usersSeedFile)
	if err != nil {
		log.WithError(err).Error("❌ Gagal membaca seed user")
		return
	}
	n, err := users.SeedUsers(ctx, authRepo.NewAuthRepository(db), seedList, defaultPassword)
	if err != nil {
		log.WithError(err).Error("❌ Seed user gagal")
		return
	}
	if n > 0 {
		log.WithField("count", n).Info("✅ Default users created")
	}
}
