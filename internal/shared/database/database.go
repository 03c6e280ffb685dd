// Package database holds gorm helpers shared by the repositories.
package database

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Session returns a gorm handle bound to ctx. When tx is non-nil every
// statement issued through the handle runs inside that transaction, which is
// how services keep a whole read-modify-write on one *sql.Tx.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	s := db.WithContext(ctx)
	if tx != nil {
		s.Statement.ConnPool = tx
	}
	return s
}

// ContainsPattern builds a lower-cased LIKE pattern matching s anywhere.
// Wildcards in s are escaped; use it with ESCAPE '\'.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
