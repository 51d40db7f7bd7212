package store

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindPostgres Kind = "postgres"
	KindMySQL    Kind = "mysql"
	KindSQLite   Kind = "sqlite"
)

// ParseKind accepts the DB_TYPE spellings. An empty value selects SQLite.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "postgresql", "pg":
		return KindPostgres, nil
	case "mysql", "mariadb":
		return KindMySQL, nil
	case "sqlite", "sqlite3", "":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unknown database type %q", raw)
	}
}

func (k Kind) String() string {
	return string(k)
}

// probeChain orders the backends to try: the preferred one, the configured
// fallbacks, and finally SQLite. Duplicates keep their first position.
// Unknown names are returned separately so the caller can report them.
func probeChain(preferred string, fallback []string) ([]Kind, []error) {
	var (
		chain   []Kind
		invalid []error
		seen    = make(map[Kind]bool)
	)

	for _, raw := range append([]string{preferred}, fallback...) {
		kind, err := ParseKind(raw)
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		chain = append(chain, kind)
	}

	if !seen[KindSQLite] {
		chain = append(chain, KindSQLite)
	}
	return chain, invalid
}
