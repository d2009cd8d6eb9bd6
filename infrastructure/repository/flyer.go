package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const (
	flyersTable        = "flyers"
	flyerProductsTable = "flyer_products"
)

type FlyerRepository interface {
	CreateFlyer(flyer *domain.Flyer) (*domain.Flyer, error)
	UpdateFlyer(flyer *domain.Flyer) error
	GetFlyerByID(flyerID string) (*domain.Flyer, error)
	ListFlyers() ([]*domain.Flyer, error)
	DeleteFlyer(flyerID string) error

	CreateFlyerProduct(product *domain.FlyerProduct) (*domain.FlyerProduct, error)
	GetFlyerProductByID(productID int) (*domain.FlyerProduct, error)
	ListFlyerProducts(includeDeleted bool) ([]*domain.FlyerProduct, error)
	SoftDeleteFlyerProduct(productID int) error
	ReactivateFlyerProduct(productID int) error
}

type flyerRepository struct {
	conn *postgres.Connection
}

func NewFlyerRepository(conn *postgres.Connection) FlyerRepository {
	return &flyerRepository{
		conn: conn,
	}
}

func (r *flyerRepository) CreateFlyer(flyer *domain.Flyer) (*domain.Flyer, error) {
	query, args, err := squirrel.
		Insert(flyersTable).
		Columns("id", "title", "background", "layout").
		Values(flyer.ID, flyer.Title, flyer.Background, []byte(flyer.Layout)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao criar volantino: %w", err)
	}

	return flyer, nil
}

func (r *flyerRepository) UpdateFlyer(flyer *domain.Flyer) error {
	queryBuilder := squirrel.
		Update(flyersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": flyer.ID})

	if flyer.Title != "" {
		queryBuilder = queryBuilder.Set("title", flyer.Title)
	}

	if flyer.Background != "" {
		queryBuilder = queryBuilder.Set("background", flyer.Background)
	}

	if len(flyer.Layout) > 0 {
		queryBuilder = queryBuilder.Set("layout", []byte(flyer.Layout))
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar volantino: %w", err)
	}

	return nil
}

func (r *flyerRepository) GetFlyerByID(flyerID string) (*domain.Flyer, error) {
	var flyer domain.Flyer
	var layout []byte

	err := r.conn.QueryRow(
		"SELECT id, title, background, layout, created_at, updated_at FROM flyers WHERE id = $1",
		flyerID,
	).Scan(
		&flyer.ID,
		&flyer.Title,
		&flyer.Background,
		&layout,
		&flyer.CreatedAt,
		&flyer.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	flyer.Layout = layout
	return &flyer, nil
}

func (r *flyerRepository) ListFlyers() ([]*domain.Flyer, error) {
	query, args, err := squirrel.
		Select("id", "title", "background", "layout", "created_at", "updated_at").
		From(flyersTable).
		OrderBy("created_at DESC").
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

	var flyers []*domain.Flyer
	for rows.Next() {
		var flyer domain.Flyer
		var layout []byte
		if err := rows.Scan(
			&flyer.ID,
			&flyer.Title,
			&flyer.Background,
			&layout,
			&flyer.CreatedAt,
			&flyer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		flyer.Layout = layout
		flyers = append(flyers, &flyer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return flyers, nil
}

func (r *flyerRepository) DeleteFlyer(flyerID string) error {
	query, args, err := squirrel.
		Delete(flyersTable).
		Where(squirrel.Eq{"id": flyerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir volantino: %w", err)
	}

	return nil
}

func (r *flyerRepository) CreateFlyerProduct(product *domain.FlyerProduct) (*domain.FlyerProduct, error) {
	query, args, err := squirrel.
		Insert(flyerProductsTable).
		Columns("name", "price", "image", "deleted").
		Values(product.Name, product.Price, product.Image, false).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&product.ID); err != nil {
		return nil, fmt.Errorf("erro ao criar produto de volantino: %w", err)
	}

	return product, nil
}

func (r *flyerRepository) GetFlyerProductByID(productID int) (*domain.FlyerProduct, error) {
	var product domain.FlyerProduct
	err := r.conn.QueryRow(
		"SELECT id, name, price, image, deleted, created_at, updated_at FROM flyer_products WHERE id = $1",
		productID,
	).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Image,
		&product.Deleted,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *flyerRepository) ListFlyerProducts(includeDeleted bool) ([]*domain.FlyerProduct, error) {
	queryBuilder := squirrel.
		Select("id", "name", "price", "image", "deleted", "created_at", "updated_at").
		From(flyerProductsTable).
		OrderBy("name ASC")

	if !includeDeleted {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"deleted": false})
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.FlyerProduct
	for rows.Next() {
		var product domain.FlyerProduct
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Image,
			&product.Deleted,
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

// SoftDeleteFlyerProduct marca o produto como excluído sem removê-lo,
// preservando referências em layouts antigos.
func (r *flyerRepository) SoftDeleteFlyerProduct(productID int) error {
	return r.setFlyerProductDeleted(productID, true)
}

// ReactivateFlyerProduct desfaz a exclusão lógica quando o produto volta
// a ser referenciado por um layout ou por uma indicação manual.
func (r *flyerRepository) ReactivateFlyerProduct(productID int) error {
	return r.setFlyerProductDeleted(productID, false)
}

func (r *flyerRepository) setFlyerProductDeleted(productID int, deleted bool) error {
	query, args, err := squirrel.
		Update(flyerProductsTable).
		Set("deleted", deleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar produto de volantino: %w", err)
	}

	return nil
}
