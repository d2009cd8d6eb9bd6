package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const revenuesTable = "revenues"

type RevenueRepository interface {
	TotalForPeriod(customerID, month, year int) (decimal.Decimal, error)
	MostRecentEntryDate(customerID int) (*time.Time, error)
	MonthlyTotalsLastN(n int) ([]domain.MonthlyTotal, error)
	TotalsByZone() ([]domain.ZoneTotal, error)
	SaveOrUpdate(entry *domain.RevenueEntry) error
	BulkSaveOrUpdate(ctx context.Context, entries []*domain.RevenueEntry) error
	TotalByCustomer(customerID int) (decimal.Decimal, error)
	HistoryByCustomer(customerID int) ([]domain.MonthlyTotal, error)
	ListByPeriod(month, year int, zone string) ([]domain.CustomerRevenue, error)
	DeleteByCustomer(customerID int) error
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// TotalForPeriod retorna o faturamento de um cliente em um período.
// Período sem lançamento retorna zero, nunca erro.
func (r *revenueRepository) TotalForPeriod(customerID, month, year int) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("amount").
		From(revenuesTable).
		Where(squirrel.Eq{"customer_id": customerID, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var amount decimal.Decimal
	err = r.conn.QueryRow(query, args...).Scan(&amount)
	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao consultar faturamento do período: %w", err)
	}

	return amount, nil
}

// MostRecentEntryDate retorna o primeiro dia do período mais recente com
// lançamento para o cliente. Clientes sem histórico retornam nil.
func (r *revenueRepository) MostRecentEntryDate(customerID int) (*time.Time, error) {
	query, args, err := squirrel.
		Select("year", "month").
		From(revenuesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("year DESC", "month DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var year, month int
	err = r.conn.QueryRow(query, args...).Scan(&year, &month)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar último lançamento: %w", err)
	}

	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &date, nil
}

// MonthlyTotalsLastN retorna os últimos n períodos distintos com
// lançamento, agregados e em ordem cronológica crescente.
func (r *revenueRepository) MonthlyTotalsLastN(n int) ([]domain.MonthlyTotal, error) {
	inner := squirrel.
		Select("year", "month", "SUM(amount) AS total").
		From(revenuesTable).
		GroupBy("year", "month").
		OrderBy("year DESC", "month DESC").
		Limit(uint64(n)).
		PlaceholderFormat(squirrel.Dollar)

	innerSQL, args, err := inner.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT year, month, total FROM (%s) AS last_periods ORDER BY year ASC, month ASC",
		innerSQL,
	)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais mensais: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.MonthlyTotal, 0)
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// TotalsByZone agrega o faturamento por zona do cliente. Zonas nulas ou
// vazias são agrupadas no rótulo "Sconosciuta".
func (r *revenueRepository) TotalsByZone() ([]domain.ZoneTotal, error) {
	query, args, err := squirrel.
		Select(
			fmt.Sprintf("COALESCE(NULLIF(TRIM(c.zone), ''), '%s') AS zone", domain.ZoneUnknown),
			"SUM(r.amount) AS total",
		).
		From("revenues r").
		Join("customers c ON c.id = r.customer_id").
		GroupBy("1").
		OrderBy("1 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais por zona: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.ZoneTotal, 0)
	for rows.Next() {
		var t domain.ZoneTotal
		if err := rows.Scan(&t.Zone, &t.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total por zona: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// SaveOrUpdate grava o faturamento de um cliente em um período. Um novo
// envio para o mesmo período substitui o valor anterior.
func (r *revenueRepository) SaveOrUpdate(entry *domain.RevenueEntry) error {
	query := squirrel.StatementBuilder.
		Insert(revenuesTable).
		Columns("customer_id", "month", "year", "amount").
		Values(entry.CustomerID, entry.Month, entry.Year, entry.Amount).
		Suffix(`
			ON CONFLICT (customer_id, year, month) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// BulkSaveOrUpdate grava vários lançamentos em uma única transação.
// Usado pela correção em lote de faturamento.
func (r *revenueRepository) BulkSaveOrUpdate(ctx context.Context, entries []*domain.RevenueEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query := squirrel.StatementBuilder.
				Insert(revenuesTable).
				Columns("customer_id", "month", "year", "amount").
				Values(entry.CustomerID, entry.Month, entry.Year, entry.Amount).
				Suffix(`
					ON CONFLICT (customer_id, year, month) DO UPDATE SET
						amount = EXCLUDED.amount,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao gravar lançamento do cliente %d: %w", entry.CustomerID, err)
			}
		}

		return nil
	})
}

// TotalByCustomer retorna o faturamento acumulado de um cliente.
func (r *revenueRepository) TotalByCustomer(customerID int) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(revenuesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao consultar faturamento acumulado: %w", err)
	}

	return total, nil
}

// HistoryByCustomer retorna o histórico mensal de um cliente em ordem
// cronológica crescente.
func (r *revenueRepository) HistoryByCustomer(customerID int) ([]domain.MonthlyTotal, error) {
	query, args, err := squirrel.
		Select("year", "month", "amount").
		From(revenuesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico do cliente: %w", err)
	}
	defer rows.Close()

	history := make([]domain.MonthlyTotal, 0)
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		history = append(history, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}

// ListByPeriod lista o faturamento de um período, opcionalmente filtrado
// por zona, com os dados do cliente para a listagem da tela de fatturato.
func (r *revenueRepository) ListByPeriod(month, year int, zone string) ([]domain.CustomerRevenue, error) {
	builder := squirrel.
		Select(
			"c.id",
			"c.name",
			fmt.Sprintf("COALESCE(NULLIF(TRIM(c.zone), ''), '%s') AS zone", domain.ZoneUnknown),
			"r.month",
			"r.year",
			"r.amount",
		).
		From("revenues r").
		Join("customers c ON c.id = r.customer_id").
		Where(squirrel.Eq{"r.month": month, "r.year": year}).
		OrderBy("c.name ASC")

	if zone != "" {
		builder = builder.Where(squirrel.Eq{"c.zone": zone})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturamento do período: %w", err)
	}
	defer rows.Close()

	revenues := make([]domain.CustomerRevenue, 0)
	for rows.Next() {
		var cr domain.CustomerRevenue
		if err := rows.Scan(&cr.CustomerID, &cr.CustomerName, &cr.Zone, &cr.Month, &cr.Year, &cr.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear faturamento: %w", err)
		}
		revenues = append(revenues, cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

// DeleteByCustomer apaga todo o histórico de faturamento de um cliente.
// Chamado quando o cliente é excluído do sistema.
func (r *revenueRepository) DeleteByCustomer(customerID int) error {
	query, args, err := squirrel.
		Delete(revenuesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao apagar faturamento do cliente: %w", err)
	}

	return nil
}
