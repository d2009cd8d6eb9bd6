package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const (
	productsTable         = "products"
	customerProductsTable = "customer_products"
	removedProductsTable  = "removed_products"
)

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	GetProductByID(productID int) (*domain.Product, error)
	GetProductByCode(code string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	DeleteProduct(productID int) error

	LinkCustomerProduct(customerID, productID int, worked bool, currentPrice, offerPrice *decimal.Decimal) error
	UnlinkCustomerProduct(customerID, productID int) error
	ListProductsByCustomer(customerID int) ([]domain.LinkedProduct, error)
	ListCustomersByProduct(productID int) ([]domain.ProductCustomer, error)

	SaveRemovedProduct(removed *domain.RemovedProduct) error
	CountLinksSince(since time.Time) (added int, removed int, err error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("code", "name", "category_id").
		Values(product.Code, product.Name, product.CategoryID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(query, args...).Scan(&product.ID); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID})

	if product.Code != "" {
		queryBuilder = queryBuilder.Set("code", product.Code)
	}

	if product.Name != "" {
		queryBuilder = queryBuilder.Set("name", product.Name)
	}

	if product.CategoryID != 0 {
		queryBuilder = queryBuilder.Set("category_id", product.CategoryID)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *productRepository) GetProductByID(productID int) (*domain.Product, error) {
	row := r.conn.QueryRow(`
		SELECT p.id, p.code, p.name, p.category_id, c.name, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`,
		productID,
	)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) GetProductByCode(code string) (*domain.Product, error) {
	row := r.conn.QueryRow(`
		SELECT p.id, p.code, p.name, p.category_id, c.name, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.code = $1`,
		code,
	)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func scanProduct(row *sql.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.Code,
		&product.Name,
		&product.CategoryID,
		&product.CategoryName,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id", "p.code", "p.name", "p.category_id", "c.name", "p.created_at", "p.updated_at").
		From("products p").
		Join("categories c ON c.id = p.category_id").
		OrderBy("c.name ASC", "p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Code,
			&product.Name,
			&product.CategoryID,
			&product.CategoryName,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) DeleteProduct(productID int) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	return nil
}

// LinkCustomerProduct vincula um produto a um cliente. Revincular um
// produto já existente atualiza a marcação e os preços.
func (r *productRepository) LinkCustomerProduct(customerID, productID int, worked bool, currentPrice, offerPrice *decimal.Decimal) error {
	query := squirrel.StatementBuilder.
		Insert(customerProductsTable).
		Columns("customer_id", "product_id", "worked", "current_price", "offer_price").
		Values(customerID, productID, worked, currentPrice, offerPrice).
		Suffix(`
			ON CONFLICT (customer_id, product_id) DO UPDATE SET
				worked = EXCLUDED.worked,
				current_price = EXCLUDED.current_price,
				offer_price = EXCLUDED.offer_price
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao vincular produto: %w", err)
	}

	return nil
}

func (r *productRepository) UnlinkCustomerProduct(customerID, productID int) error {
	query, args, err := squirrel.
		Delete(customerProductsTable).
		Where(squirrel.Eq{"customer_id": customerID, "product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desvincular produto: %w", err)
	}

	return nil
}

func (r *productRepository) ListProductsByCustomer(customerID int) ([]domain.LinkedProduct, error) {
	query, args, err := squirrel.
		Select("cp.product_id", "p.name", "p.code", "cp.worked", "cp.current_price", "cp.offer_price", "cp.created_at").
		From("customer_products cp").
		Join("products p ON p.id = cp.product_id").
		Where(squirrel.Eq{"cp.customer_id": customerID}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos do cliente: %w", err)
	}
	defer rows.Close()

	products := make([]domain.LinkedProduct, 0)
	for rows.Next() {
		var lp domain.LinkedProduct
		if err := rows.Scan(&lp.ProductID, &lp.ProductName, &lp.Code, &lp.Worked, &lp.CurrentPrice, &lp.OfferPrice, &lp.LinkedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto vinculado: %w", err)
		}
		products = append(products, lp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListCustomersByProduct(productID int) ([]domain.ProductCustomer, error) {
	query, args, err := squirrel.
		Select(
			"c.id",
			"c.name",
			fmt.Sprintf("COALESCE(NULLIF(TRIM(c.zone), ''), '%s')", domain.ZoneUnknown),
			"c.phone",
			"cp.worked",
			"cp.current_price",
			"cp.offer_price",
		).
		From("customer_products cp").
		Join("customers c ON c.id = cp.customer_id").
		Where(squirrel.Eq{"cp.product_id": productID}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes do produto: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.ProductCustomer, 0)
	for rows.Next() {
		var pc domain.ProductCustomer
		if err := rows.Scan(&pc.CustomerID, &pc.CustomerName, &pc.Zone, &pc.Phone, &pc.Worked, &pc.CurrentPrice, &pc.OfferPrice); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente do produto: %w", err)
		}
		customers = append(customers, pc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return customers, nil
}

// SaveRemovedProduct grava a linha de auditoria de remoção de produto.
// O nome do produto é copiado para a auditoria sobreviver à exclusão.
func (r *productRepository) SaveRemovedProduct(removed *domain.RemovedProduct) error {
	query, args, err := squirrel.
		Insert(removedProductsTable).
		Columns("customer_id", "product_id", "product_name").
		Values(removed.CustomerID, removed.ProductID, removed.ProductName).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar auditoria de remoção: %w", err)
	}

	return nil
}

// CountLinksSince conta vínculos criados e remoções auditadas a partir
// de uma data. Alimenta os contadores do painel.
func (r *productRepository) CountLinksSince(since time.Time) (int, int, error) {
	var added int
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM customer_products WHERE created_at >= $1",
		since,
	).Scan(&added)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao contar vínculos criados: %w", err)
	}

	var removed int
	err = r.conn.QueryRow(
		"SELECT COUNT(*) FROM removed_products WHERE removed_at >= $1",
		since,
	).Scan(&removed)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao contar remoções: %w", err)
	}

	return added, removed, nil
}
