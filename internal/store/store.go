// Package store loads the candidate directory and the configuration
// tables from Postgres. The matching core never touches the database;
// callers load a snapshot here and hand it to the engine.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/namematch/internal/config"
	"github.com/namematch/internal/matcher"
)

// Connection holds the database connection.
type Connection struct {
	DB *sql.DB
}

// NewConnection opens a connection using the PG* environment variables.
func NewConnection() (*Connection, error) {
	host := config.GetEnv("PGHOST", "localhost")
	port := config.GetEnv("PGPORT", "5432")
	user := config.GetEnv("PGUSER", "namematch")
	password := config.GetEnv("PGPASSWORD", "namematch")
	dbname := config.GetEnv("PGDATABASE", "namematch")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	return &Connection{DB: db}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	return c.DB.Close()
}

// LoadCandidates returns the full person directory in insertion order.
// Order matters: scoring ties resolve to the earliest candidate.
func (c *Connection) LoadCandidates() ([]string, error) {
	rows, err := c.DB.Query(`SELECT full_name FROM person_directory ORDER BY person_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query person_directory: %w", err)
	}
	defer rows.Close()

	var candidates []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		candidates = append(candidates, name)
	}
	return candidates, rows.Err()
}

// LoadTables reads a consistent snapshot of all five configuration
// tables. The returned value is independent of the database; later
// table edits never affect searches already running against it.
func (c *Connection) LoadTables() (matcher.Tables, error) {
	t := matcher.Tables{}

	var err error
	if t.NameRemap, err = c.loadRemap("name_variant"); err != nil {
		return t, err
	}
	if t.SurnameRemap, err = c.loadRemap("surname_variant"); err != nil {
		return t, err
	}
	if t.FullNameCanonical, err = c.loadLookup("full_name_canonical"); err != nil {
		return t, err
	}
	if t.PartialToFull, err = c.loadLookup("partial_name"); err != nil {
		return t, err
	}
	if t.SingleNamePriority, err = c.loadLookup("single_name_priority"); err != nil {
		return t, err
	}

	return t, nil
}

// loadRemap reads a variant table (name, variant) into a one-to-many map.
func (c *Connection) loadRemap(table string) (map[string][]string, error) {
	rows, err := c.DB.Query(fmt.Sprintf(`SELECT name, variant FROM %s ORDER BY name, variant`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	remap := make(map[string][]string)
	for rows.Next() {
		var name, variant string
		if err := rows.Scan(&name, &variant); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		remap[name] = append(remap[name], variant)
	}
	return remap, rows.Err()
}

// loadLookup reads a lookup table (variant, canonical) into a map.
func (c *Connection) loadLookup(table string) (map[string]string, error) {
	rows, err := c.DB.Query(fmt.Sprintf(`SELECT variant, canonical FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	lookup := make(map[string]string)
	for rows.Next() {
		var variant, canonical string
		if err := rows.Scan(&variant, &canonical); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		lookup[variant] = canonical
	}
	return lookup, rows.Err()
}
