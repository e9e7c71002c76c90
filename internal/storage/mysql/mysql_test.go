package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var testDB *sql.DB

// Тесты требуют живой MySQL, DSN берём из окружения.
// Без TEST_MYSQL_DSN пакет пропускается целиком.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		os.Exit(0)
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
	}
	defer testDB.Close()

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	code := m.Run()

	os.Exit(code)
}
