package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// MigrateDir применяет все *.sql файлы каталога в лексикографическом порядке,
// поэтому имена миграций начинаются с номера: 0001_deals.sql.
func MigrateDir(ctx context.Context, db *sqlx.DB, dir string) error {
	files, err := SQLFiles(dir)
	if err != nil {
		return err
	}

	return MigrateFromFile(ctx, db, files...)
}

// SQLFiles список миграций каталога в порядке применения.
func SQLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	files := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)

	return files, nil
}

// MigrateFromFile выполняет файлы целиком, каждый одним запросом.
func MigrateFromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext %s: %w", filepath.Base(fileName), err)
		}
	}

	return nil
}
