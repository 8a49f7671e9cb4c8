package db

import "database/sql"

// MigrateUp creates the schema if it does not exist.
// Statements are idempotent so repeated startup is safe.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id                   SERIAL PRIMARY KEY,
    title                TEXT NOT NULL,
    body                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    submitted_by_user_id INTEGER NOT NULL REFERENCES users(id),
    created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// 投稿者別の記事取得と所有者チェック用
		`CREATE INDEX IF NOT EXISTS idx_articles_submitted_by ON articles(submitted_by_user_id)`,
		// id順ページング用(PRIMARY KEYで足りるが明示)
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_created_at`,
		`DROP INDEX IF EXISTS idx_articles_submitted_by`,
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
