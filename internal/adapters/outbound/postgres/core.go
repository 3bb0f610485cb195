package postgres

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"unicode"

	"github.com/Masterminds/squirrel"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// runner is the storage handle repositories run on: either a *sql.DB or a
// *sql.Tx handed out by the unit of work.
type runner interface {
	squirrel.BaseRunner
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// repositoryCore carries the shared configuration and helpers every domain
// repository is built from: entity identity, table name, retry bound, input
// validation, field-name translation, and error translation. Repositories
// compose it explicitly instead of rebinding methods with decorators.
type repositoryCore struct {
	entity domain.EntityType
	table  string
	retry  retryPolicy
	log    *zap.Logger
}

func newRepositoryCore(entity domain.EntityType, table string, log *zap.Logger) repositoryCore {
	return repositoryCore{
		entity: entity,
		table:  table,
		retry:  newRetryPolicy(defaultMaxRetries, log),
		log:    log,
	}
}

// defaultMaxRetries bounds retries of transient storage failures per repository.
const defaultMaxRetries = 2

// requireID rejects the zero identifier before any storage call is made.
func (c repositoryCore) requireID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationErr(c.entity, "id cannot be empty")
	}
	return nil
}

// validateRequired checks that all required parameters are present, reporting
// every missing key at once rather than just the first one found.
func (c repositoryCore) validateRequired(params map[string]any, required ...string) error {
	var missing []string
	for _, key := range required {
		value, ok := params[key]
		if !ok || value == nil || value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return domain.NewValidationErrWithMetadata(
		c.entity,
		"missing required parameters: "+strings.Join(missing, ", "),
		map[string]any{"missing": missing},
	)
}

// storageErr wraps a storage failure in the domain hierarchy at the exact
// call site that failed. Errors already belonging to the hierarchy pass
// through unchanged, so internal calls between repository methods never
// double-wrap.
func (c repositoryCore) storageErr(op string, err error, metadata map[string]any) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainErr(err) {
		return err
	}
	return domain.NewRepositoryErr(c.entity, op, err, metadata)
}

// withRetry runs a read operation under the repository's retry policy and
// translates the final failure at the boundary.
func (c repositoryCore) withRetry(ctx context.Context, op string, fn func() error) error {
	err := c.retry.Do(ctx, op, fn)
	return c.storageErr(op, err, nil)
}

// sortClause validates and translates an external sort clause into a storage
// ORDER BY clause. Only columns in allowed may be sorted on.
func (c repositoryCore) sortClause(sortBy *domain.SortBy, allowed map[string]struct{}, fallback string) (string, error) {
	if sortBy == nil {
		return fallback, nil
	}
	if err := sortBy.Validate(c.entity); err != nil {
		return "", err
	}
	column := translateFieldName(sortBy.Field)
	if _, ok := allowed[column]; !ok {
		return "", domain.NewValidationErr(c.entity, "cannot sort by field "+sortBy.Field)
	}
	return column + " " + string(sortBy.Direction), nil
}

// translateFieldName converts an external camelCase field name to the storage
// layer's snake_case column name. The translation is deterministic and
// reversible via externalFieldName.
func translateFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// externalFieldName converts a snake_case column name back to the external
// camelCase convention.
func externalFieldName(column string) string {
	parts := strings.Split(column, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// queryAll runs a select and scans every row with the given scan function,
// returning rows in storage-returned order.
func queryAll[T any](ctx context.Context, qry squirrel.SelectBuilder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := qry.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
