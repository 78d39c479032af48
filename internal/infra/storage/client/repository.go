package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/psqlbuilder"
)

const table = "clients"

// Repository справочник клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return &c, nil
}

// Search ищет клиентов по подстроке имени (без учёта регистра) или телефона
// Пустой запрос возвращает первых limit клиентов
func (r *Repository) Search(ctx context.Context, q string, limit int) ([]domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := searchQuery(q, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("%w: Search - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

// Upsert добавляет клиента или обновляет имя и телефон существующего
func (r *Repository) Upsert(ctx context.Context, c domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "phone").
		Values(c.ID, c.Name, c.Phone).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func searchQuery(q string, limit int) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select("id", "name", "phone").
		From(table).
		OrderBy("name ASC")

	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.Like{"phone": pattern},
		})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}
	return selectBuilder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
