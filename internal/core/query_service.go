package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RowSet is a generically typed, ordered query result: column names plus one
// value slice per row.
type RowSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// QueryService exposes the raw read surface: full-table reads over the closed
// table enumeration and parameterized read-only queries. Caller-supplied
// values are always bound as parameters; caller-supplied identifiers never
// reach the database.
type QueryService interface {
	// ReadTable returns all rows of one of the eleven tables, ordered by
	// primary key. Any other name fails with *UnknownTableError before a
	// query is issued.
	ReadTable(ctx context.Context, name string) (*RowSet, error)

	// RunQuery executes a read-only parameterized statement. The SQL text must
	// be a trusted literal owned by this package or the reporting engine —
	// never untrusted input.
	RunQuery(ctx context.Context, sql string, args ...any) (*RowSet, error)
}

type queryService struct {
	pool *pgxpool.Pool
}

func NewQueryService(pool *pgxpool.Pool) QueryService {
	return &queryService{pool: pool}
}

func (s *queryService) ReadTable(ctx context.Context, name string) (*RowSet, error) {
	table, err := ParseTable(name)
	if err != nil {
		return nil, err
	}

	// The table and key names come from the schema registry, not the caller.
	def := defFor(table)
	stmt := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", table, strings.Join(def.pkColumns, ", "))
	return s.RunQuery(ctx, stmt)
}

func (s *queryService) RunQuery(ctx context.Context, sql string, args ...any) (*RowSet, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	result := &RowSet{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return result, nil
}
