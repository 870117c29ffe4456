package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/shared/constant"
	"spa/shared/dto"
	"spa/shared/logger"
	"strings"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

// executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type executor interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Repository runs named-parameter queries for one table whose columns are the `db` tags of T,
// including the tags of embedded structs.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       dbColumns(reflect.TypeOf(zero)),
	}
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (model T, err error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectList(), repo.table, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.prepare(ctx, query)
	if err != nil {
		return model, err
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to get %s: %w", repo.entity, err)
	}

	return model, nil
}

// GetAll paginates when params carries a limit and sorts when it carries both sort fields.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) (models []T, err error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(), repo.table, where)

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		fmt.Fprintf(&query, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		query.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = params.Offset()
			query.WriteString(" OFFSET :offset")
		}
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query.String())

	stmt, err := repo.prepare(ctx, query.String())
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list %s: %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.table, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.prepare(ctx, query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count %s: %w", repo.entity, err)
	}

	return count, nil
}

// Delete refuses an empty filter.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (err error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	if where == constant.Empty {
		return fmt.Errorf("failed to delete %s: %w", repo.entity, errRequiredFilter)
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.writer(ctx).NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete %s: %w", repo.entity, err)
	}

	return nil
}

// Upsert inserts the model or, when conflictColumn already holds its value, overwrites updateColumns.
// With no updateColumns every column except conflictColumn is overwritten.
func (repo *Repository[T]) Upsert(ctx context.Context, model T, conflictColumn string, updateColumns ...string) (err error) {
	ctx, scope := repo.scope(ctx, "Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(updateColumns) == 0 {
		for _, col := range repo.columns {
			if col != conflictColumn {
				updateColumns = append(updateColumns, col)
			}
		}
	}

	placeholders := make([]string, len(repo.columns))
	for idx, col := range repo.columns {
		placeholders[idx] = ":" + col
	}

	assignments := make([]string, len(updateColumns))
	for idx, col := range updateColumns {
		assignments[idx] = col + " = EXCLUDED." + col
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		repo.table,
		strings.Join(repo.columns, ", "),
		strings.Join(placeholders, ", "),
		conflictColumn,
		strings.Join(assignments, ", "),
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.writer(ctx).NamedExecContext(ctx, query, model); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert %s: %w", repo.entity, err)
	}

	return nil
}

// BuildWhereClause renders the filter with a leading space, or nothing for an empty filter.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return constant.Empty, map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) prepare(ctx context.Context, query string) (*sqlx.NamedStmt, error) {
	stmt, err := repo.reader(ctx).PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}

	return stmt, nil
}

func (repo *Repository[T]) selectList() string {
	qualified := make([]string, len(repo.columns))
	for idx, col := range repo.columns {
		qualified[idx] = repo.table + "." + col
	}

	return strings.Join(qualified, ", ")
}

// reader prefers the transaction carried by ctx so reads observe its uncommitted writes.
func (repo *Repository[T]) reader(ctx context.Context) executor {
	if tx, ok := postgres.TxFromContext(ctx); ok {
		return tx
	}

	return repo.db.Read
}

func (repo *Repository[T]) writer(ctx context.Context) executor {
	if tx, ok := postgres.TxFromContext(ctx); ok {
		return tx
	}

	return repo.db.Write
}

func dbColumns(reflectType reflect.Type) []string {
	columns := []string{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != constant.Empty && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
