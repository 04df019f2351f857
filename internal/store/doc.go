// Package store persists translation catalogs in SQLite databases, so
// catalogs can be shipped or edited outside their text form and rebuilt
// from the database later.
package store
