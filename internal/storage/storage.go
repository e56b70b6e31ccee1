// Package storage реализует хранилище данных на основе PostgreSQL
// для управления пользователями, стадами и записями надоев. Предоставляет
// методы создания, чтения, обновления, удаления и агрегирования записей.
//
// Все выборки и мутации по стадам и надоям фильтруются по цепочке владения
// одним запросом: запись, не принадлежащая вызывающему пользователю,
// неотличима от несуществующей.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, по которым обработчики выбирают HTTP-статус.
var (
	// ErrNotFound означает, что запись отсутствует либо не принадлежит вызывающему.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate означает нарушение уникальности email или username.
	ErrDuplicate = errors.New("duplicate value")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, стадами и надоями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// wrapErr переводит ошибки драйвера в сентинельные ошибки хранилища,
// сохраняя оригинал в цепочке.
func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
