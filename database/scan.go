package database

// rowScanner is satisfied by both pgx.Row and pgx.Rows, letting the
// per-collection scan helpers serve single and multi-row queries.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
