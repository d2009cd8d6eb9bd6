package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const categoriesTable = "categories"

type CategoryRepository interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	UpdateCategory(category *domain.Category) error
	GetCategoryByID(categoryID int) (*domain.Category, error)
	ListCategories() ([]*domain.Category, error)
	DeleteCategory(categoryID int) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	query, args, err := squirrel.
		Insert(categoriesTable).
		Columns("name", "image_url").
		Values(category.Name, category.ImageURL).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(query, args...).Scan(&category.ID); err != nil {
		return nil, err
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(category *domain.Category) error {
	queryBuilder := squirrel.
		Update(categoriesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": category.ID})

	if category.Name != "" {
		queryBuilder = queryBuilder.Set("name", category.Name)
	}

	if category.ImageURL != nil {
		queryBuilder = queryBuilder.Set("image_url", category.ImageURL)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *categoryRepository) GetCategoryByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.conn.QueryRow(
		"SELECT id, name, image_url, created_at, updated_at FROM categories WHERE id = $1",
		categoryID,
	).Scan(
		&category.ID,
		&category.Name,
		&category.ImageURL,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) ListCategories() ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name", "image_url", "created_at", "updated_at").
		From(categoriesTable).
		OrderBy("name ASC").
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

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.ImageURL,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) DeleteCategory(categoryID int) error {
	query, args, err := squirrel.
		Delete(categoriesTable).
		Where(squirrel.Eq{"id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir categoria: %w", err)
	}

	return nil
}
