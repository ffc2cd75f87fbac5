package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const foodLogSchema = `
CREATE TABLE IF NOT EXISTS food_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  food TEXT NOT NULL,
  date TEXT NOT NULL,
  meal INTEGER NOT NULL
);`

// SaveSQLite replaces the contents of the food_log table at path with t.
// The parent directory must already exist.
func SaveSQLite(ctx context.Context, path string, t Table) error {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, foodLogSchema); err != nil {
		return fmt.Errorf("create food_log: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_log`); err != nil {
		return fmt.Errorf("clear food_log: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO food_log (food, date, meal) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range t.Records {
		if _, err := stmt.ExecContext(ctx, rec.Food, rec.Date, rec.Meal); err != nil {
			return fmt.Errorf("insert %q: %w", rec.Food, err)
		}
	}
	return tx.Commit()
}

// LoadSQLite reads the food_log table back in insertion order. A missing
// database is an error rather than a new empty file.
func LoadSQLite(ctx context.Context, path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT food, date, meal FROM food_log ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Food, &rec.Date, &rec.Meal); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
