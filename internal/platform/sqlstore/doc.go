// Package sqlstore implements store.CatalogStore with database/sql.
//
// The same store serves MySQL (go-sql-driver/mysql), PostgreSQL
// (pgx stdlib) and SQLite (modernc.org/sqlite). Queries are written once
// with ? placeholders and a Dialect rebinds them and supplies the few
// engine-specific keywords. Driver errors are mapped to *store.QueryError.
package sqlstore
