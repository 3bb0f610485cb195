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
	challengeFields = []string{
		"id",
		"user_id",
		"focus_area_id",
		"title",
		"description",
		"difficulty",
		"status",
		"due_date",
		"created_at",
		"updated_at",
	}

	challengeSortable = map[string]struct{}{
		"title":      {},
		"difficulty": {},
		"status":     {},
		"due_date":   {},
		"created_at": {},
		"updated_at": {},
	}

	challengeUpsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
		"user_id = EXCLUDED.user_id, focus_area_id = EXCLUDED.focus_area_id, " +
		"title = EXCLUDED.title, description = EXCLUDED.description, " +
		"difficulty = EXCLUDED.difficulty, status = EXCLUDED.status, " +
		"due_date = EXCLUDED.due_date, updated_at = EXCLUDED.updated_at " +
		"RETURNING " + strings.Join(challengeFields, ", ")
)

// rowScanner lets scan helpers work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ChallengeRepository implements the domain.ChallengeRepository interface
// using PostgreSQL as the storage backend.
type ChallengeRepository struct {
	core repositoryCore
	sb   squirrel.StatementBuilderType
}

// NewChallengeRepository creates a new instance of ChallengeRepository.
func NewChallengeRepository(r runner, log *zap.Logger) ChallengeRepository {
	return ChallengeRepository{
		core: newRepositoryCore(domain.EntityType_Challenge, "challenges", log),
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(r),
	}
}

// Save upserts the challenge and returns the aggregate as persisted.
func (cr ChallengeRepository) Save(ctx context.Context, challenge domain.Challenge) (domain.Challenge, error) {
	if err := challenge.Validate(); err != nil {
		return domain.Challenge{}, err
	}
	if challenge.ID == uuid.Nil {
		challenge.ID = uuid.New()
	}

	row := cr.sb.
		Insert(cr.core.table).
		Columns(challengeFields...).
		Values(
			challenge.ID,
			challenge.UserID,
			nullableID(challenge.FocusAreaID),
			challenge.Title,
			challenge.Description,
			challenge.Difficulty,
			challenge.Status,
			challenge.DueDate,
			challenge.CreatedAt,
			challenge.UpdatedAt,
		).
		Suffix(challengeUpsertSuffix).
		QueryRowContext(ctx)

	saved, err := scanChallenge(row)
	if err != nil {
		return domain.Challenge{}, cr.core.storageErr("save", err, map[string]any{"id": challenge.ID.String()})
	}
	return saved, nil
}

// GetByID retrieves a challenge by its ID.
func (cr ChallengeRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Challenge, bool, error) {
	if err := cr.core.requireID(id); err != nil {
		return domain.Challenge{}, false, err
	}

	var challenge domain.Challenge
	var found bool
	err := cr.core.withRetry(ctx, "get_by_id", func() error {
		row := cr.sb.
			Select(challengeFields...).
			From(cr.core.table).
			Where(squirrel.Eq{"id": id}).
			QueryRowContext(ctx)

		got, err := scanChallenge(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		challenge, found = got, true
		return nil
	})
	if err != nil {
		return domain.Challenge{}, false, err
	}
	return challenge, found, nil
}

// GetByIDs retrieves challenges matching the given identifiers in a single
// set-membership query. An empty input resolves to an empty result without
// touching storage.
func (cr ChallengeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Challenge, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := cr.core.requireID(id); err != nil {
			return nil, err
		}
	}

	var challenges []domain.Challenge
	err := cr.core.withRetry(ctx, "get_by_ids", func() error {
		qry := cr.sb.
			Select(challengeFields...).
			From(cr.core.table).
			Where(squirrel.Eq{"id": ids})

		got, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.Challenge, error) {
			return scanChallenge(rows)
		})
		if err != nil {
			return err
		}
		challenges = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// Delete removes the challenge, returning the deleted aggregate so callers
// can source the deletion event. When the challenge does not exist it fails
// with NotFoundErr before issuing any delete statement.
func (cr ChallengeRepository) Delete(ctx context.Context, id uuid.UUID) (domain.Challenge, error) {
	if err := cr.core.requireID(id); err != nil {
		return domain.Challenge{}, err
	}

	row := cr.sb.
		Select(challengeFields...).
		From(cr.core.table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	existing, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Challenge{}, domain.NewNotFoundErr(cr.core.entity, "challenge not found")
	}
	if err != nil {
		return domain.Challenge{}, cr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}

	_, err = cr.sb.
		Delete(cr.core.table).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return domain.Challenge{}, cr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}
	return existing, nil
}

// Search returns a filtered, sorted, paginated page of challenges plus the
// total number of matches.
func (cr ChallengeRepository) Search(ctx context.Context, query domain.ChallengeSearch) (domain.SearchResult[domain.Challenge], error) {
	var zero domain.SearchResult[domain.Challenge]

	if err := query.Page.Validate(cr.core.entity); err != nil {
		return zero, err
	}
	orderBy, err := cr.core.sortClause(query.SortBy, challengeSortable, "created_at DESC")
	if err != nil {
		return zero, err
	}

	where := squirrel.And{}
	if query.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *query.UserID})
	}
	if query.FocusAreaID != nil {
		where = append(where, squirrel.Eq{"focus_area_id": *query.FocusAreaID})
	}
	if query.Status != nil {
		where = append(where, squirrel.Eq{"status": *query.Status})
	}
	if query.DueAfter != nil {
		where = append(where, squirrel.GtOrEq{"due_date": *query.DueAfter})
	}
	if query.DueBefore != nil {
		where = append(where, squirrel.LtOrEq{"due_date": *query.DueBefore})
	}

	var result domain.SearchResult[domain.Challenge]
	err = cr.core.withRetry(ctx, "search", func() error {
		qry := cr.sb.
			Select(challengeFields...).
			From(cr.core.table).
			OrderBy(orderBy).
			Limit(query.Page.Limit()).
			Offset(query.Page.Offset())
		if len(where) > 0 {
			qry = qry.Where(where)
		}

		items, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.Challenge, error) {
			return scanChallenge(rows)
		})
		if err != nil {
			return err
		}

		countQry := cr.sb.Select("COUNT(*)").From(cr.core.table)
		if len(where) > 0 {
			countQry = countQry.Where(where)
		}
		var total int64
		if err := countQry.QueryRowContext(ctx).Scan(&total); err != nil {
			return err
		}

		result = domain.SearchResult[domain.Challenge]{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// scanChallenge hydrates a challenge from a storage row.
func scanChallenge(s rowScanner) (domain.Challenge, error) {
	var challenge domain.Challenge
	var focusAreaID uuid.NullUUID
	err := s.Scan(
		&challenge.ID,
		&challenge.UserID,
		&focusAreaID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Difficulty,
		&challenge.Status,
		&challenge.DueDate,
		&challenge.CreatedAt,
		&challenge.UpdatedAt,
	)
	if err != nil {
		return domain.Challenge{}, err
	}
	if focusAreaID.Valid {
		challenge.FocusAreaID = focusAreaID.UUID
	}
	return challenge, nil
}

// nullableID maps the zero UUID to a NULL column value.
func nullableID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}

// InitChallengeRepository is the initializer for ChallengeRepository.
type InitChallengeRepository struct {
	DB     *sql.DB     `resolve:""`
	Logger *zap.Logger `resolve:""`
}

// Initialize registers the ChallengeRepository in the dependency container.
func (icr InitChallengeRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChallengeRepository](NewChallengeRepository(icr.DB, icr.Logger))
	return ctx, nil
}
