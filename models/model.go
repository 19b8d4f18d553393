package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lock appends FOR UPDATE to the query. Pass the transaction handle so
// the lock is released with the transaction.
func Lock(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
