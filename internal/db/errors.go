package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrInvalidIdentifier = errors.New("db: invalid identifier")
	ErrInvalidQuery      = errors.New("db: invalid query")
	ErrInvalidTable      = errors.New("db: invalid table definition")
	ErrIndexExists       = errors.New("db: index already exists")
)

// Op constants name the failing command for error context.
const (
	OpCreateIndex = "FT.CREATE"
	OpSearch      = "FT.SEARCH"
	OpHSet        = "HSET"
	OpCreateTable = "CREATE TABLE"
	OpCreateIdx   = "CREATE INDEX"
	OpUpsert      = "INSERT"
	OpSelect      = "SELECT"
	OpScan        = "SCAN"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
