package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// PostgreSQL SQLSTATE classes
const (
	pgClassConnection        = "08"
	pgClassResources         = "53"
	pgClassIntegrity         = "23"
	pgClassSyntaxOrAccess    = "42"
	pgClassDataException     = "22"
	pgClassOperatorIntervene = "57"
)

// MySQL server error numbers
const (
	mysqlAccessDenied      = 1045
	mysqlTooManyConns      = 1040
	mysqlBadDB             = 1049
	mysqlDupEntry          = 1062
	mysqlBadNull           = 1048
	mysqlRowIsReferenced   = 1451
	mysqlNoReferencedRow   = 1452
	mysqlParseError        = 1064
	mysqlNoSuchTable       = 1146
	mysqlBadField          = 1054
	mysqlNonUniqField      = 1052
	mysqlLockWaitTimeout   = 1205
	mysqlQueryTimeout      = 3024
	mysqlServerShutdown    = 1053
	mysqlConnCountExceeded = 1203
)

// MapError wraps a driver error from operation op into a *store.QueryError.
// The result always matches store.ErrDataAccess. A nil err maps to nil.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var qe *store.QueryError
	if errors.As(err, &qe) {
		return err
	}

	return store.NewQueryError(op, classify(err), err)
}

func classify(err error) store.FailureKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return store.KindTimeout
	case errors.Is(err, context.Canceled):
		return store.KindCanceled
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn):
		return store.KindConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return store.KindConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr.Number)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return store.KindTimeout
		}
		return store.KindConnection
	}

	// database/sql does not export its closed-pool error.
	if strings.Contains(err.Error(), "database is closed") {
		return store.KindConnection
	}

	return store.KindUnknown
}

func classifyPostgres(code string) store.FailureKind {
	if len(code) < 2 {
		return store.KindUnknown
	}
	switch code[:2] {
	case pgClassConnection, pgClassResources:
		return store.KindConnection
	case pgClassIntegrity:
		return store.KindConstraint
	case pgClassSyntaxOrAccess, pgClassDataException:
		return store.KindStatement
	case pgClassOperatorIntervene:
		// 57014 query_canceled is raised by statement_timeout.
		return store.KindTimeout
	default:
		return store.KindUnknown
	}
}

func classifyMySQL(number uint16) store.FailureKind {
	switch number {
	case mysqlAccessDenied, mysqlTooManyConns, mysqlBadDB, mysqlServerShutdown, mysqlConnCountExceeded:
		return store.KindConnection
	case mysqlDupEntry, mysqlBadNull, mysqlRowIsReferenced, mysqlNoReferencedRow:
		return store.KindConstraint
	case mysqlParseError, mysqlNoSuchTable, mysqlBadField, mysqlNonUniqField:
		return store.KindStatement
	case mysqlLockWaitTimeout, mysqlQueryTimeout:
		return store.KindTimeout
	default:
		return store.KindUnknown
	}
}
