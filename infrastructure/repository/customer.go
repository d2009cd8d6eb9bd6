package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const customersTable = "customers"

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(customer *domain.Customer) error
	GetCustomerByID(customerID int) (*domain.Customer, error)
	ListCustomers(zone string) ([]*domain.Customer, error)
	DeleteCustomer(customerID int) error
	ListZones() ([]string, error)
	CountRegisteredSince(since time.Time) (int, error)
	SetBlocked(customerID int, blocked bool) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns("name", "zone", "phone", "registered_at", "blocked").
		Values(customer.Name, customer.Zone, customer.Phone, customer.RegisteredAt, customer.Blocked).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(customerSQL, customerArgs...).Scan(&customer.ID)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(customer *domain.Customer) error {
	queryBuilder := squirrel.
		Update(customersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID})

	if customer.Name != "" {
		queryBuilder = queryBuilder.Set("name", customer.Name)
	}

	if customer.Zone != "" {
		queryBuilder = queryBuilder.Set("zone", customer.Zone)
	}

	if customer.Phone != nil && *customer.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", customer.Phone)
	}

	if !customer.RegisteredAt.IsZero() {
		queryBuilder = queryBuilder.Set("registered_at", customer.RegisteredAt)
	}

	customerSQL, customerArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(customerSQL, customerArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *customerRepository) GetCustomerByID(customerID int) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.conn.QueryRow(
		"SELECT id, name, COALESCE(zone, ''), phone, registered_at, blocked, created_at, updated_at FROM customers WHERE id = $1",
		customerID,
	).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Zone,
		&customer.Phone,
		&customer.RegisteredAt,
		&customer.Blocked,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepository) ListCustomers(zone string) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select("id", "name", "COALESCE(zone, '')", "phone", "registered_at", "blocked", "created_at", "updated_at").
		From(customersTable).
		OrderBy("name ASC")

	if zone != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"zone": zone})
	}

	customerSQL, customerArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(customerSQL, customerArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Zone,
			&customer.Phone,
			&customer.RegisteredAt,
			&customer.Blocked,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}

		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *customerRepository) DeleteCustomer(customerID int) error {
	query, args, err := squirrel.
		Delete(customersTable).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	return nil
}

// ListZones retorna as zonas distintas já usadas, ignorando valores
// vazios. Zonas novas nascem junto com o cliente que as usa.
func (r *customerRepository) ListZones() ([]string, error) {
	query := "SELECT DISTINCT zone FROM customers WHERE zone IS NOT NULL AND TRIM(zone) <> '' ORDER BY zone ASC"

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar zonas: %w", err)
	}
	defer rows.Close()

	zones := make([]string, 0)
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("erro ao escanear zona: %w", err)
		}
		zones = append(zones, zone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return zones, nil
}

func (r *customerRepository) CountRegisteredSince(since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		Where(squirrel.GtOrEq{"registered_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes novos: %w", err)
	}

	return count, nil
}

// SetBlocked grava a flag persistida de bloqueio. A escrita é feita
// apenas pelo serviço de sincronização de status, nunca durante leituras.
func (r *customerRepository) SetBlocked(customerID int, blocked bool) error {
	query, args, err := squirrel.
		Update(customersTable).
		Set("blocked", blocked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar flag de bloqueio: %w", err)
	}

	return nil
}
