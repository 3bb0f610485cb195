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
	evaluationFields = []string{
		"id",
		"user_id",
		"challenge_id",
		"score",
		"strengths",
		"improvements",
		"summary",
		"created_at",
		"updated_at",
	}

	evaluationSortable = map[string]struct{}{
		"score":      {},
		"created_at": {},
		"updated_at": {},
	}

	evaluationUpsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
		"user_id = EXCLUDED.user_id, challenge_id = EXCLUDED.challenge_id, " +
		"score = EXCLUDED.score, strengths = EXCLUDED.strengths, " +
		"improvements = EXCLUDED.improvements, summary = EXCLUDED.summary, " +
		"updated_at = EXCLUDED.updated_at " +
		"RETURNING " + strings.Join(evaluationFields, ", ")
)

// EvaluationRepository implements the domain.EvaluationRepository interface
// using PostgreSQL as the storage backend. String lists are stored as JSONB.
type EvaluationRepository struct {
	core repositoryCore
	sb   squirrel.StatementBuilderType
}

// NewEvaluationRepository creates a new instance of EvaluationRepository.
func NewEvaluationRepository(r runner, log *zap.Logger) EvaluationRepository {
	return EvaluationRepository{
		core: newRepositoryCore(domain.EntityType_Evaluation, "evaluations", log),
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(r),
	}
}

// Save upserts the evaluation and returns the aggregate as persisted.
func (er EvaluationRepository) Save(ctx context.Context, evaluation domain.Evaluation) (domain.Evaluation, error) {
	if err := evaluation.Validate(); err != nil {
		return domain.Evaluation{}, err
	}
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}

	strengths, err := json.Marshal(evaluation.Strengths)
	if err != nil {
		return domain.Evaluation{}, er.core.storageErr("save", err, nil)
	}
	improvements, err := json.Marshal(evaluation.Improvements)
	if err != nil {
		return domain.Evaluation{}, er.core.storageErr("save", err, nil)
	}

	row := er.sb.
		Insert(er.core.table).
		Columns(evaluationFields...).
		Values(
			evaluation.ID,
			evaluation.UserID,
			evaluation.ChallengeID,
			evaluation.Score,
			strengths,
			improvements,
			evaluation.Summary,
			evaluation.CreatedAt,
			evaluation.UpdatedAt,
		).
		Suffix(evaluationUpsertSuffix).
		QueryRowContext(ctx)

	saved, err := scanEvaluation(row)
	if err != nil {
		return domain.Evaluation{}, er.core.storageErr("save", err, map[string]any{"id": evaluation.ID.String()})
	}
	return saved, nil
}

// GetByID retrieves an evaluation by its ID.
func (er EvaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Evaluation, bool, error) {
	if err := er.core.requireID(id); err != nil {
		return domain.Evaluation{}, false, err
	}

	var evaluation domain.Evaluation
	var found bool
	err := er.core.withRetry(ctx, "get_by_id", func() error {
		row := er.sb.
			Select(evaluationFields...).
			From(er.core.table).
			Where(squirrel.Eq{"id": id}).
			QueryRowContext(ctx)

		got, err := scanEvaluation(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		evaluation, found = got, true
		return nil
	})
	if err != nil {
		return domain.Evaluation{}, false, err
	}
	return evaluation, found, nil
}

// GetByIDs retrieves evaluations matching the given identifiers in a single query.
func (er EvaluationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Evaluation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := er.core.requireID(id); err != nil {
			return nil, err
		}
	}

	var evaluations []domain.Evaluation
	err := er.core.withRetry(ctx, "get_by_ids", func() error {
		qry := er.sb.
			Select(evaluationFields...).
			From(er.core.table).
			Where(squirrel.Eq{"id": ids})

		got, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.Evaluation, error) {
			return scanEvaluation(rows)
		})
		if err != nil {
			return err
		}
		evaluations = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

// Delete removes the evaluation, returning the deleted aggregate. Fails with
// NotFoundErr before issuing any delete statement when it is missing.
func (er EvaluationRepository) Delete(ctx context.Context, id uuid.UUID) (domain.Evaluation, error) {
	if err := er.core.requireID(id); err != nil {
		return domain.Evaluation{}, err
	}

	row := er.sb.
		Select(evaluationFields...).
		From(er.core.table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	existing, err := scanEvaluation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Evaluation{}, domain.NewNotFoundErr(er.core.entity, "evaluation not found")
	}
	if err != nil {
		return domain.Evaluation{}, er.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}

	_, err = er.sb.
		Delete(er.core.table).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return domain.Evaluation{}, er.core.storageErr("delete", err, map[string]any{"id": id.String()})
	}
	return existing, nil
}

// Search returns a filtered, sorted, paginated page of evaluations plus the
// total number of matches.
func (er EvaluationRepository) Search(ctx context.Context, query domain.EvaluationSearch) (domain.SearchResult[domain.Evaluation], error) {
	var zero domain.SearchResult[domain.Evaluation]

	if err := query.Page.Validate(er.core.entity); err != nil {
		return zero, err
	}
	orderBy, err := er.core.sortClause(query.SortBy, evaluationSortable, "created_at DESC")
	if err != nil {
		return zero, err
	}

	where := squirrel.And{}
	if query.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *query.UserID})
	}
	if query.ChallengeID != nil {
		where = append(where, squirrel.Eq{"challenge_id": *query.ChallengeID})
	}
	if query.MinScore != nil {
		where = append(where, squirrel.GtOrEq{"score": *query.MinScore})
	}
	if query.MaxScore != nil {
		where = append(where, squirrel.LtOrEq{"score": *query.MaxScore})
	}

	var result domain.SearchResult[domain.Evaluation]
	err = er.core.withRetry(ctx, "search", func() error {
		qry := er.sb.
			Select(evaluationFields...).
			From(er.core.table).
			OrderBy(orderBy).
			Limit(query.Page.Limit()).
			Offset(query.Page.Offset())
		if len(where) > 0 {
			qry = qry.Where(where)
		}

		items, err := queryAll(ctx, qry, func(rows *sql.Rows) (domain.Evaluation, error) {
			return scanEvaluation(rows)
		})
		if err != nil {
			return err
		}

		countQry := er.sb.Select("COUNT(*)").From(er.core.table)
		if len(where) > 0 {
			countQry = countQry.Where(where)
		}
		var total int64
		if err := countQry.QueryRowContext(ctx).Scan(&total); err != nil {
			return err
		}

		result = domain.SearchResult[domain.Evaluation]{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// scanEvaluation hydrates an evaluation from a storage row.
func scanEvaluation(s rowScanner) (domain.Evaluation, error) {
	var evaluation domain.Evaluation
	var strengths, improvements []byte
	err := s.Scan(
		&evaluation.ID,
		&evaluation.UserID,
		&evaluation.ChallengeID,
		&evaluation.Score,
		&strengths,
		&improvements,
		&evaluation.Summary,
		&evaluation.CreatedAt,
		&evaluation.UpdatedAt,
	)
	if err != nil {
		return domain.Evaluation{}, err
	}
	if len(strengths) > 0 {
		if err := json.Unmarshal(strengths, &evaluation.Strengths); err != nil {
			return domain.Evaluation{}, err
		}
	}
	if len(improvements) > 0 {
		if err := json.Unmarshal(improvements, &evaluation.Improvements); err != nil {
			return domain.Evaluation{}, err
		}
	}
	return evaluation, nil
}

// InitEvaluationRepository is the initializer for EvaluationRepository.
type InitEvaluationRepository struct {
	DB     *sql.DB     `resolve:""`
	Logger *zap.Logger `resolve:""`
}

// Initialize registers the EvaluationRepository in the dependency container.
func (ier InitEvaluationRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EvaluationRepository](NewEvaluationRepository(ier.DB, ier.Logger))
	return ctx, nil
}
