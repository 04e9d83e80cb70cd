package sqldb

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// sqliteLowerFunc folds case like Go's strings.ToLower. SQLite's built-in
// LOWER only folds ASCII, so accented capitals would never match a pattern
// lowered in Go.
const sqliteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Lower wraps expr in the dialect's Unicode-aware lower-casing function.
func (d Dialect) Lower(expr string) string {
	if d == DialectPostgres {
		return "LOWER(" + expr + ")"
	}
	return sqliteLowerFunc + "(" + expr + ")"
}
