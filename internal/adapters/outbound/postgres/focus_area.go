package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	focusAreaFields = []string{
		"id",
		"user_id",
		"name",
		"description",
		"priority",
		"active",
		"created_at",
		"updated_at",
	}

	focusAreaSortable = map[string]struct{}{
		"name":       {},
		"priority":   {},
		"created_at": {},
		"updated_at": {},
	}

	focusAreaUpsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
		"user_id = EXCLUDED.user_id, name = EXCLUDED.name, " +
		"description = EXCLUDED.description, priority = EXCLUDED.priority, " +
		"active = EXCLUDED.active, updated_at = EXCLUDED.updated_at " +
		"RETURNING " + strings.Join(focusAreaFields, ", ")
)

// FocusAreaRepository implements the domain.FocusAreaRepository interface
// using PostgreSQL as the storage backend.
type FocusAreaRepository struct {
	core repositoryCore
	sb   squirrel.StatementBuilderType
}

// NewFocusAreaRepository creates a new instance of FocusAreaRepository.
func NewFocusAreaRepository(r runner, log *zap.Logger) FocusAreaRepository {
	return FocusAreaRepository{
		core: newRepositoryCore(domain.EntityType_FocusArea, "focus_areas", log),
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(r),
	}
}

// Save upserts the focus area and returns the aggregate as persisted.
func (fr FocusAreaRepository) Save(ctx context.Context, focusArea domain.FocusArea) (domain.FocusArea, error) {
	if err := focusArea.Validate(); err != nil {
		return domain.FocusArea{}, err
	}
	if focusArea.ID == uuid.Nil {
		focusArea.ID = uuid.New()
	}

	row := fr.sb.
		Insert(fr.core.table).
		Columns(focusAreaFields...).
		Values(
			focusArea.ID,
			focusArea.UserID,
			focusArea.Name,
			focusArea.Description,
			focusArea.Priority,
			focusArea.Active,
			focusArea.CreatedAt,
			focusArea.UpdatedAt,
		).
		Suffix(focusAreaUpsertSuffix).
		QueryRowContext(ctx)

	saved, err := scanFocusArea(row)
	if err != nil {
		return domain.FocusArea{}, fr.core.storageErr("save", err, map[string]any{"id": focusArea.ID.String()})
	}
	return saved, nil
}

// GetByID retrieves a focus area by its ID.
func (fr FocusAreaRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.FocusArea, bool, error) {
	if err := fr.core.requireID(id); err != nil {
		return domain.FocusArea{}, false, err
	}

	var focusArea domain.FocusArea
	var found bool
	err := fr.core.withRetry(ctx, "get_by_id", func() error {
		row := fr.sb.
			Select(focusAreaFields...).
			From(fr.core.table).
			Where(squirrel.Eq{"id": id}).
			QueryRowContext(ctx)

		got, err := scanFocusArea(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		focusArea, found = got, true
		return nil
	})
	if err != nil {
		return domain.FocusArea{}, false, err
	}
	return focusArea, found, nil
}

// GetByIDs retrieves focus areas matching the given identifiers in a single query.
func (fr FocusAreaRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.FocusArea, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := fr.core.requireID(id); err != nil {
			return nil, err
		}
	}

	var focusAreas []domain.FocusArea
	err := fr.core.withRetry(ctx, "get_by_ids", func() error {
		qry := fr.sb.
			Select(focusAreaFields...).
			From(fr.core.table).
			Where(squirrel.Eq{"id": ids})

		got, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.FocusArea, error) {
			return scanFocusArea(rows)
		})
		if err != nil {
			return err
		}
		focusAreas = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return focusAreas, nil
}

// Delete removes the focus area, returning the deleted aggregate. Fails with
// NotFoundErr before issuing any delete statement when it is missing.
func (fr FocusAreaRepository) Delete(ctx context.Context, id uuid.UUID) (domain.FocusArea, error) {
	if err := fr.core.requireID(id); err != nil {
		return domain.FocusArea{}, err
	}

	row := fr.sb.
		Select(focusAreaFields...).
		From(fr.core.table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	existing, err := scanFocusArea(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FocusArea{}, domain.NewNotFoundErr(fr.core.entity, "focus area not found")
	}
	if err != nil {
		return domain.FocusArea{}, fr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}

	_, err = fr.sb.
		Delete(fr.core.table).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return domain.FocusArea{}, fr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}
	return existing, nil
}

// Search returns a filtered, sorted, paginated page of focus areas plus the
// total number of matches.
func (fr FocusAreaRepository) Search(ctx context.Context, query domain.FocusAreaSearch) (domain.SearchResult[domain.FocusArea], error) {
	var zero domain.SearchResult[domain.FocusArea]

	if err := query.Page.Validate(fr.core.entity); err != nil {
		return zero, err
	}
	orderBy, err := fr.core.sortClause(query.SortBy, focusAreaSortable, "priority ASC")
	if err != nil {
		return zero, err
	}

	where := squirrel.And{}
	if query.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *query.UserID})
	}
	if query.Active != nil {
		where = append(where, squirrel.Eq{"active": *query.Active})
	}
	if query.MinPriority != nil {
		where = append(where, squirrel.GtOrEq{"priority": *query.MinPriority})
	}

	var result domain.SearchResult[domain.FocusArea]
	err = fr.core.withRetry(ctx, "search", func() error {
		qry := fr.sb.
			Select(focusAreaFields...).
			From(fr.core.table).
			OrderBy(orderBy).
			Limit(query.Page.Limit()).
			Offset(query.Page.Offset())
		if len(where) > 0 {
			qry = qry.Where(where)
		}

		items, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.FocusArea, error) {
			return scanFocusArea(rows)
		})
		if err != nil {
			return err
		}

		countQry := fr.sb.Select("COUNT(*)").From(fr.core.table)
		if len(where) > 0 {
			countQry = countQry.Where(where)
		}
		var total int64
		if err := countQry.QueryRowContext(ctx).Scan(&total); err != nil {
			return err
		}

		result = domain.SearchResult[domain.FocusArea]{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// scanFocusArea hydrates a focus area from a storage row.
func scanFocusArea(s rowScanner) (domain.FocusArea, error) {
	var focusArea domain.FocusArea
	err := s.Scan(
		&focusArea.ID,
		&focusArea.UserID,
		&focusArea.Name,
		&focusArea.Description,
		&focusArea.Priority,
		&focusArea.Active,
		&focusArea.CreatedAt,
		&focusArea.UpdatedAt,
	)
	if err != nil {
		return domain.FocusArea{}, err
	}
	return focusArea, nil
}

// InitFocusAreaRepository is the initializer for FocusAreaRepository.
type InitFocusAreaRepository struct {
	DB     *sql.DB     `resolve:""`
	Logger *zap.Logger `resolve:""`
}

// Initialize registers the FocusAreaRepository in the dependency container.
func (ifr InitFocusAreaRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.FocusAreaRepository](NewFocusAreaRepository(ifr.DB, ifr.Logger))
	return ctx, nil
}
