package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

const flashPromosTable = "flash_promos"

type FlashPromoRepository interface {
	CreateFlashPromo(promo *domain.FlashPromo) (*domain.FlashPromo, error)
	UpdateFlashPromo(promo *domain.FlashPromo) error
	GetFlashPromoByID(promoID string) (*domain.FlashPromo, error)
	ListFlashPromos() ([]*domain.FlashPromo, error)
	DeleteFlashPromo(promoID string) error
}

type flashPromoRepository struct {
	conn *postgres.Connection
}

func NewFlashPromoRepository(conn *postgres.Connection) FlashPromoRepository {
	return &flashPromoRepository{
		conn: conn,
	}
}

func (r *flashPromoRepository) CreateFlashPromo(promo *domain.FlashPromo) (*domain.FlashPromo, error) {
	query, args, err := squirrel.
		Insert(flashPromosTable).
		Columns("id", "name", "price", "image", "background", "layout").
		Values(promo.ID, promo.Name, promo.Price, promo.Image, promo.Background, []byte(promo.Layout)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao criar promo lampo: %w", err)
	}

	return promo, nil
}

func (r *flashPromoRepository) UpdateFlashPromo(promo *domain.FlashPromo) error {
	queryBuilder := squirrel.
		Update(flashPromosTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promo.ID})

	if promo.Name != "" {
		queryBuilder = queryBuilder.Set("name", promo.Name)
	}

	if !promo.Price.IsZero() {
		queryBuilder = queryBuilder.Set("price", promo.Price)
	}

	if promo.Image != "" {
		queryBuilder = queryBuilder.Set("image", promo.Image)
	}

	if promo.Background != "" {
		queryBuilder = queryBuilder.Set("background", promo.Background)
	}

	if len(promo.Layout) > 0 {
		queryBuilder = queryBuilder.Set("layout", []byte(promo.Layout))
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar promo lampo: %w", err)
	}

	return nil
}

func (r *flashPromoRepository) GetFlashPromoByID(promoID string) (*domain.FlashPromo, error) {
	var promo domain.FlashPromo
	var layout []byte

	err := r.conn.QueryRow(
		"SELECT id, name, price, image, background, layout, created_at, updated_at FROM flash_promos WHERE id = $1",
		promoID,
	).Scan(
		&promo.ID,
		&promo.Name,
		&promo.Price,
		&promo.Image,
		&promo.Background,
		&layout,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	promo.Layout = layout
	return &promo, nil
}

func (r *flashPromoRepository) ListFlashPromos() ([]*domain.FlashPromo, error) {
	query, args, err := squirrel.
		Select("id", "name", "price", "image", "background", "layout", "created_at", "updated_at").
		From(flashPromosTable).
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

	var promos []*domain.FlashPromo
	for rows.Next() {
		var promo domain.FlashPromo
		var layout []byte
		if err := rows.Scan(
			&promo.ID,
			&promo.Name,
			&promo.Price,
			&promo.Image,
			&promo.Background,
			&layout,
			&promo.CreatedAt,
			&promo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		promo.Layout = layout
		promos = append(promos, &promo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return promos, nil
}

func (r *flashPromoRepository) DeleteFlashPromo(promoID string) error {
	query, args, err := squirrel.
		Delete(flashPromosTable).
		Where(squirrel.Eq{"id": promoID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir promo lampo: %w", err)
	}

	return nil
}
