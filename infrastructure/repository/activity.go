package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const activityLogTable = "activity_log"

type ActivityRepository interface {
	Log(entry *domain.ActivityEntry) error
	ListByCustomer(customerID int, limit int) ([]domain.ActivityEntry, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) Log(entry *domain.ActivityEntry) error {
	query, args, err := squirrel.
		Insert(activityLogTable).
		Columns("customer_id", "action", "detail").
		Values(entry.CustomerID, entry.Action, entry.Detail).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar atividade: %w", err)
	}

	return nil
}

func (r *activityRepository) ListByCustomer(customerID int, limit int) ([]domain.ActivityEntry, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "action", "detail", "created_at").
		From(activityLogTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar atividades: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityEntry, 0)
	for rows.Next() {
		var entry domain.ActivityEntry
		if err := rows.Scan(&entry.ID, &entry.CustomerID, &entry.Action, &entry.Detail, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}
