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
	userFields = []string{
		"id",
		"email",
		"display_name",
		"timezone",
		"onboarding_completed",
		"created_at",
		"updated_at",
	}

	userSortable = map[string]struct{}{
		"email":        {},
		"display_name": {},
		"created_at":   {},
		"updated_at":   {},
	}

	userUpsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
		"email = EXCLUDED.email, display_name = EXCLUDED.display_name, " +
		"timezone = EXCLUDED.timezone, onboarding_completed = EXCLUDED.onboarding_completed, " +
		"updated_at = EXCLUDED.updated_at " +
		"RETURNING " + strings.Join(userFields, ", ")
)

// UserRepository implements the domain.UserRepository interface using
// PostgreSQL as the storage backend.
type UserRepository struct {
	core repositoryCore
	r    runner
	sb   squirrel.StatementBuilderType
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(r runner, log *zap.Logger) UserRepository {
	return UserRepository{
		core: newRepositoryCore(domain.EntityType_User, "users", log),
		r:    r,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(r),
	}
}

// Save upserts the user and returns the aggregate as persisted.
func (ur UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if err := user.Validate(); err != nil {
		return domain.User{}, err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	row := ur.sb.
		Insert(ur.core.table).
		Columns(userFields...).
		Values(
			user.ID,
			user.Email,
			user.DisplayName,
			user.Timezone,
			user.OnboardingCompleted,
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix(userUpsertSuffix).
		QueryRowContext(ctx)

	saved, err := scanUser(row)
	if err != nil {
		return domain.User{}, ur.core.storageErr("save", err, map[string]any{"id": user.ID.String()})
	}
	return saved, nil
}

// GetByID retrieves a user by its ID.
func (ur UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	if err := ur.core.requireID(id); err != nil {
		return domain.User{}, false, err
	}
	return ur.getOne(ctx, "get_by_id", squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email address.
func (ur UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	if err := ur.core.validateRequired(map[string]any{"email": email}, "email"); err != nil {
		return domain.User{}, false, err
	}
	return ur.getOne(ctx, "get_by_email", squirrel.Eq{"email": email})
}

func (ur UserRepository) getOne(ctx context.Context, op string, pred any) (domain.User, bool, error) {
	var user domain.User
	var found bool
	err := ur.core.withRetry(ctx, op, func() error {
		row := ur.sb.
			Select(userFields...).
			From(ur.core.table).
			Where(pred).
			QueryRowContext(ctx)

		got, err := scanUser(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		user, found = got, true
		return nil
	})
	if err != nil {
		return domain.User{}, false, err
	}
	return user, found, nil
}

// GetByIDs retrieves users matching the given identifiers in a single query.
func (ur UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := ur.core.requireID(id); err != nil {
			return nil, err
		}
	}

	var users []domain.User
	err := ur.core.withRetry(ctx, "get_by_ids", func() error {
		qry := ur.sb.
			Select(userFields...).
			From(ur.core.table).
			Where(squirrel.Eq{"id": ids})

		got, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.User, error) {
			return scanUser(rows)
		})
		if err != nil {
			return err
		}
		users = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user, returning the deleted aggregate. Fails with
// NotFoundErr before issuing any delete statement when the user is missing.
func (ur UserRepository) Delete(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if err := ur.core.requireID(id); err != nil {
		return domain.User{}, err
	}

	row := ur.sb.
		Select(userFields...).
		From(ur.core.table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	existing, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.NewNotFoundErr(ur.core.entity, "user not found")
	}
	if err != nil {
		return domain.User{}, ur.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}

	_, err = ur.sb.
		Delete(ur.core.table).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return domain.User{}, ur.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}
	return existing, nil
}

// Search returns a filtered, sorted, paginated page of users plus the total
// number of matches.
func (ur UserRepository) Search(ctx context.Context, query domain.UserSearch) (domain.SearchResult[domain.User], error) {
	var zero domain.SearchResult[domain.User]

	if err := query.Page.Validate(ur.core.entity); err != nil {
		return zero, err
	}
	orderBy, err := ur.core.sortClause(query.SortBy, userSortable, "created_at DESC")
	if err != nil {
		return zero, err
	}

	where := squirrel.And{}
	if query.EmailContains != nil {
		where = append(where, squirrel.ILike{"email": "%" + *query.EmailContains + "%"})
	}
	if query.OnboardingCompleted != nil {
		where = append(where, squirrel.Eq{"onboarding_completed": *query.OnboardingCompleted})
	}

	var result domain.SearchResult[domain.User]
	err = ur.core.withRetry(ctx, "search", func() error {
		qry := ur.sb.
			Select(userFields...).
			From(ur.core.table).
			OrderBy(orderBy).
			Limit(query.Page.Limit()).
			Offset(query.Page.Offset())
		if len(where) > 0 {
			qry = qry.Where(where)
		}

		items, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.User, error) {
			return scanUser(rows)
		})
		if err != nil {
			return err
		}

		countQry := ur.sb.Select("COUNT(*)").From(ur.core.table)
		if len(where) > 0 {
			countQry = countQry.Where(where)
		}
		var total int64
		if err := countQry.QueryRowContext(ctx).Scan(&total); err != nil {
			return err
		}

		result = domain.SearchResult[domain.User]{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// ProgressSummary calls the server-side aggregation function. The function
// joins challenges, evaluations and focus areas in one round trip, which the
// statement builder cannot express, so the call goes through the runner
// directly.
func (ur UserRepository) ProgressSummary(ctx context.Context, userID uuid.UUID) (domain.UserProgressSummary, error) {
	if err := ur.core.requireID(userID); err != nil {
		return domain.UserProgressSummary{}, err
	}

	var summary domain.UserProgressSummary
	err := ur.core.withRetry(ctx, "progress_summary", func() error {
		row := ur.r.QueryRowContext(ctx,
			"SELECT user_id, active_challenges, completed_challenges, average_score, active_focus_areas FROM user_progress_summary($1)",
			userID,
		)
		return row.Scan(
			&summary.UserID,
			&summary.ActiveChallenges,
			&summary.CompletedChallenges,
			&summary.AverageScore,
			&summary.ActiveFocusAreas,
		)
	})
	if err != nil {
		return domain.UserProgressSummary{}, err
	}
	return summary, nil
}

// scanUser hydrates a user from a storage row.
func scanUser(s rowScanner) (domain.User, error) {
	var user domain.User
	err := s.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.Timezone,
		&user.OnboardingCompleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// InitUserRepository is the initializer for UserRepository.
type InitUserRepository struct {
	DB     *sql.DB     `resolve:""`
	Logger *zap.Logger `resolve:""`
}

// Initialize registers the UserRepository in the dependency container.
func (iur InitUserRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UserRepository](NewUserRepository(iur.DB, iur.Logger))
	return ctx, nil
}
