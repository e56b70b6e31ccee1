package storage

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDatabase поднимает контейнер PostgreSQL и накатывает схему.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort(nat.Port("5432/tcp")),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	// Создаем таблицы
	_, err = storage.DB.Exec(`
        DROP TABLE IF EXISTS milk_productions CASCADE;
        DROP TABLE IF EXISTS herds CASCADE;
        DROP TABLE IF EXISTS users CASCADE;

        CREATE TABLE users (
            id SERIAL PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            username TEXT UNIQUE,
            password_hash TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            membership_type TEXT NOT NULL DEFAULT 'free'
                CHECK (membership_type IN ('free', 'annual', 'lifetime'))
        );

        CREATE TABLE herds (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            cow_count INTEGER NOT NULL CHECK (cow_count >= 0),
            location_line1 TEXT,
            location_line2 TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE
        );

        CREATE TABLE milk_productions (
            id SERIAL PRIMARY KEY,
            date TIMESTAMPTZ NOT NULL,
            amount_liters DOUBLE PRECISION NOT NULL CHECK (amount_liters >= 0),
            fat_percentage DOUBLE PRECISION,
            protein_percentage DOUBLE PRECISION,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            herd_id INTEGER NOT NULL REFERENCES herds (id) ON DELETE CASCADE
        );

        CREATE INDEX idx_herds_user_id ON herds (user_id);
        CREATE INDEX idx_milk_productions_herd_id ON milk_productions (herd_id);
        CREATE INDEX idx_milk_productions_date ON milk_productions (date);
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его id
func (f *TestDataFactory) CreateUser(t *testing.T, email, username string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, 'hashedpassword') RETURNING id`,
		email, username).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateHerd создает тестовое стадо и возвращает его id
func (f *TestDataFactory) CreateHerd(t *testing.T, name string, cowCount, userID int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO herds (name, cow_count, user_id)
		VALUES ($1, $2, $3) RETURNING id`,
		name, cowCount, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateProduction создает тестовую запись надоя и возвращает её id
func (f *TestDataFactory) CreateProduction(t *testing.T, date time.Time, amountLiters float64, herdID int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO milk_productions (date, amount_liters, herd_id)
		VALUES ($1, $2, $3) RETURNING id`,
		date, amountLiters, herdID).Scan(&id)
	require.NoError(t, err)
	return id
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// VerifyRowCount проверяет число строк таблицы по условию
func (v *TestVerification) VerifyRowCount(t *testing.T, query string, want int, args ...any) {
	var count int
	err := v.storage.DB.QueryRow(query, args...).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, want, count)
}
