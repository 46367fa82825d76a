package config

// SqliteDbType selects the embedded SQLite driver
const SqliteDbType = "sqlite"

// PostgresDbType selects the PostgreSQL driver
const PostgresDbType = "postgres"
