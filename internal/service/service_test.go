package service

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"booktracker-be/internal/cache"
	"booktracker-be/internal/database"
	"booktracker-be/internal/jwt"
	"booktracker-be/internal/repository"
)

type testEnv struct {
	db    *sql.DB
	jwt   *jwt.JWTService
	auth  AuthService
	books BookService
	users repository.UserRepository
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestEnv(t *testing.T, cacheClient cache.Cache) *testEnv {
	t.Helper()

	db, err := database.NewConnection(database.DriverSQLite, filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, database.DriverSQLite))

	users := repository.NewUserRepository(db)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	return &testEnv{
		db:    db,
		jwt:   jwtService,
		users: users,
		auth:  NewAuthService(users, jwtService, WithHashCost(bcrypt.MinCost)),
		books: NewBookService(
			repository.NewBookRepository(db),
			repository.NewUserBookRepository(db),
			cacheClient,
			time.Minute,
			quietLogger(),
		),
	}
}
