package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	profileFields = []string{
		"id",
		"user_id",
		"traits",
		"summary",
		"version",
		"created_at",
		"updated_at",
	}

	profileSortable = map[string]struct{}{
		"version":    {},
		"created_at": {},
		"updated_at": {},
	}

	// the user_id conflict target enforces one profile per user at the
	// storage level
	profileUpsertSuffix = "ON CONFLICT (user_id) DO UPDATE SET " +
		"traits = EXCLUDED.traits, summary = EXCLUDED.summary, " +
		"version = EXCLUDED.version, updated_at = EXCLUDED.updated_at " +
		"RETURNING " + strings.Join(profileFields, ", ")
)

// PersonalityProfileRepository implements the
// domain.PersonalityProfileRepository interface using PostgreSQL as the
// storage backend. Traits are stored as JSONB.
type PersonalityProfileRepository struct {
	core repositoryCore
	sb   squirrel.StatementBuilderType
}

// NewPersonalityProfileRepository creates a new instance of PersonalityProfileRepository.
func NewPersonalityProfileRepository(r runner, log *zap.Logger) PersonalityProfileRepository {
	return PersonalityProfileRepository{
		core: newRepositoryCore(domain.EntityType_PersonalityProfile, "personality_profiles", log),
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(r),
	}
}

// Save upserts the profile and returns the aggregate as persisted.
func (pr PersonalityProfileRepository) Save(ctx context.Context, profile domain.PersonalityProfile) (domain.PersonalityProfile, error) {
	if err := profile.Validate(); err != nil {
		return domain.PersonalityProfile{}, err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	traits, err := json.Marshal(profile.Traits)
	if err != nil {
		return domain.PersonalityProfile{}, pr.core.storageErr("save", err, nil)
	}

	row := pr.sb.
		Insert(pr.core.table).
		Columns(profileFields...).
		Values(
			profile.ID,
			profile.UserID,
			traits,
			profile.Summary,
			profile.Version,
			profile.CreatedAt,
			profile.UpdatedAt,
		).
		Suffix(profileUpsertSuffix).
		QueryRowContext(ctx)

	saved, err := scanProfile(row)
	if err != nil {
		return domain.PersonalityProfile{}, pr.core.storageErr("save", err, map[string]any{"user_id": profile.UserID.String()})
	}
	return saved, nil
}

// GetByID retrieves a profile by its ID.
func (pr PersonalityProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.PersonalityProfile, bool, error) {
	if err := pr.core.requireID(id); err != nil {
		return domain.PersonalityProfile{}, false, err
	}
	return pr.getOne(ctx, "get_by_id", squirrel.Eq{"id": id})
}

// GetByUserID retrieves the profile belonging to the given user.
func (pr PersonalityProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.PersonalityProfile, bool, error) {
	if err := pr.core.requireID(userID); err != nil {
		return domain.PersonalityProfile{}, false, err
	}
	return pr.getOne(ctx, "get_by_user_id", squirrel.Eq{"user_id": userID})
}

func (pr PersonalityProfileRepository) getOne(ctx context.Context, op string, pred any) (domain.PersonalityProfile, bool, error) {
	var profile domain.PersonalityProfile
	var found bool
	err := pr.core.withRetry(ctx, op, func() error {
		row := pr.sb.
			Select(profileFields...).
			From(pr.core.table).
			Where(pred).
			QueryRowContext(ctx)

		got, err := scanProfile(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		profile, found = got, true
		return nil
	})
	if err != nil {
		return domain.PersonalityProfile{}, false, err
	}
	return profile, found, nil
}

// GetByIDs retrieves profiles matching the given identifiers in a single query.
func (pr PersonalityProfileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.PersonalityProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := pr.core.requireID(id); err != nil {
			return nil, err
		}
	}

	var profiles []domain.PersonalityProfile
	err := pr.core.withRetry(ctx, "get_by_ids", func() error {
		qry := pr.sb.
			Select(profileFields...).
			From(pr.core.table).
			Where(squirrel.Eq{"id": ids})

		got, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.PersonalityProfile, error) {
			return scanProfile(rows)
		})
		if err != nil {
			return err
		}
		profiles = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes the profile, returning the deleted aggregate. Fails with
// NotFoundErr before issuing any delete statement when it is missing.
func (pr PersonalityProfileRepository) Delete(ctx context.Context, id uuid.UUID) (domain.PersonalityProfile, error) {
	if err := pr.core.requireID(id); err != nil {
		return domain.PersonalityProfile{}, err
	}

	row := pr.sb.
		Select(profileFields...).
		From(pr.core.table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	existing, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PersonalityProfile{}, domain.NewNotFoundErr(pr.core.entity, "personality profile not found")
	}
	if err != nil {
		return domain.PersonalityProfile{}, pr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}

	_, err = pr.sb.
		Delete(pr.core.table).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return domain.PersonalityProfile{}, pr.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}
	return existing, nil
}

// Search returns a filtered, sorted, paginated page of profiles plus the
// total number of matches.
func (pr PersonalityProfileRepository) Search(ctx context.Context, query domain.PersonalityProfileSearch) (domain.SearchResult[domain.PersonalityProfile], error) {
	var zero domain.SearchResult[domain.PersonalityProfile]

	if err := query.Page.Validate(pr.core.entity); err != nil {
		return zero, err
	}
	orderBy, err := pr.core.sortClause(query.SortBy, profileSortable, "updated_at DESC")
	if err != nil {
		return zero, err
	}

	where := squirrel.And{}
	if query.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *query.UserID})
	}
	if query.MinVersion != nil {
		where = append(where, squirrel.GtOrEq{"version": *query.MinVersion})
	}

	var result domain.SearchResult[domain.PersonalityProfile]
	err = pr.core.withRetry(ctx, "search", func() error {
		qry := pr.sb.
			Select(profileFields...).
			From(pr.core.table).
			OrderBy(orderBy).
			Limit(query.Page.Limit()).
			Offset(query.Page.Offset())
		if len(where) > 0 {
			qry = qry.Where(where)
		}

		items, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.PersonalityProfile, error) {
			return scanProfile(rows)
		})
		if err != nil {
			return err
		}

		countQry := pr.sb.Select("COUNT(*)").From(pr.core.table)
		if len(where) > 0 {
			countQry = countQry.Where(where)
		}
		var total int64
		if err := countQry.QueryRowContext(ctx).Scan(&total); err != nil {
			return err
		}

		result = domain.SearchResult[domain.PersonalityProfile]{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// scanProfile hydrates a personality profile from a storage row.
func scanProfile(s rowScanner) (domain.PersonalityProfile, error) {
	var profile domain.PersonalityProfile
	var traits []byte
	err := s.Scan(
		&profile.ID,
		&profile.UserID,
		&traits,
		&profile.Summary,
		&profile.Version,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return domain.PersonalityProfile{}, err
	}
	if len(traits) > 0 {
		if err := json.Unmarshal(traits, &profile.Traits); err != nil {
			return domain.PersonalityProfile{}, err
		}
	}
	return profile, nil
}

// InitPersonalityProfileRepository is the initializer for PersonalityProfileRepository.
type InitPersonalityProfileRepository struct {
	DB     *sql.DB     `resolve:""`
	Logger *zap.Logger `resolve:""`
}

// Initialize registers the PersonalityProfileRepository in the dependency container.
func (ipr InitPersonalityProfileRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PersonalityProfileRepository](NewPersonalityProfileRepository(ipr.DB, ipr.Logger))
	return ctx, nil
}
