// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store countries and persons in SQLite or
// PostgreSQL, and ships the schema migration and sample seed data. Entities
// are validated before they are written and every write is logged.
package persistence
