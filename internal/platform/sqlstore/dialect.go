package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

// likeEscape is the escape character declared in every LIKE clause. It is
// not special in any supported engine's string literal syntax.
const likeEscape = '!'

type bindStyle int

const (
	bindQuestion bindStyle = iota // ?, ?, ?
	bindDollar                    // $1, $2, $3
)

// Dialect captures the SQL differences between the supported engines that
// the catalog queries depend on.
type Dialect struct {
	name       string
	driverName string
	bind       bindStyle
	random     string
	like       string
}

// Supported dialects.
var (
	MySQL = Dialect{
		name:       "mysql",
		driverName: "mysql",
		bind:       bindQuestion,
		random:     "RAND()",
		like:       "LIKE",
	}
	Postgres = Dialect{
		name:       "postgres",
		driverName: "pgx",
		bind:       bindDollar,
		random:     "RANDOM()",
		// MySQL's default collation matches case-insensitively; ILIKE keeps that.
		like: "ILIKE",
	}
	SQLite = Dialect{
		name:       "sqlite",
		driverName: "sqlite",
		bind:       bindQuestion,
		random:     "RANDOM()",
		like:       "LIKE",
	}
)

// DialectFor resolves a configured driver name to its Dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Name returns the canonical dialect name.
func (d Dialect) Name() string { return d.name }

// DriverName returns the database/sql driver the dialect is registered under.
func (d Dialect) DriverName() string { return d.driverName }

// RandomFunc returns the SQL function that yields a random sort key.
func (d Dialect) RandomFunc() string { return d.random }

// LikeOperator returns the case-insensitive pattern match operator.
func (d Dialect) LikeOperator() string { return d.like }

// Rebind rewrites ? placeholders into the dialect's bind variable syntax.
// Question marks inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if d.bind == bindQuestion {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeLike escapes LIKE wildcards in term so it matches literally when
// used with ESCAPE '!'.
func EscapeLike(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		switch r {
		case likeEscape, '%', '_':
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsPattern returns a LIKE pattern matching any value containing term.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}
