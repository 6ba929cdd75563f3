package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrGymNotFound   = errors.New("gym not found")
	ErrDuplicateCode = errors.New("gym code already in use")
)

const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, params CreateGymParams) (*Gym, error)
	GetByID(ctx context.Context, id int) (*Gym, error)
	GetBySlug(ctx context.Context, slug string) (*Gym, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context, tenantID int) ([]Gym, error)
	Update(ctx context.Context, id int, params UpdateGymParams) (*Gym, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateGymParams) (*Gym, error) {
	query := `
		INSERT INTO gyms (tenant_id, name, slug, address, email, theme, logo_url, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tenant_id, name, slug, address, email, theme, logo_url, schedule, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query,
		params.TenantID,
		params.Name,
		params.Slug,
		params.Address,
		params.Email,
		params.Theme,
		params.LogoURL,
		params.Schedule,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, tenant_id, name, slug, address, email, theme, logo_url, schedule, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Gym, error) {
	query := `
		SELECT id, tenant_id, name, slug, address, email, theme, logo_url, schedule, created_at
		FROM gyms
		WHERE slug = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return &gym, nil
}

func (r *repository) FindIDByName(ctx context.Context, name string) (int, error) {
	query := `SELECT id FROM gyms WHERE LOWER(name) = LOWER($1)`

	var id int
	err := r.db.GetContext(ctx, &id, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGymNotFound
		}
		return 0, err
	}

	return id, nil
}

func (r *repository) List(ctx context.Context, tenantID int) ([]Gym, error) {
	query := `
		SELECT id, tenant_id, name, slug, address, email, theme, logo_url, schedule, created_at
		FROM gyms
		WHERE tenant_id = $1
		ORDER BY name ASC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query, tenantID)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) Update(ctx context.Context, id int, params UpdateGymParams) (*Gym, error) {
	query := `
		UPDATE gyms
		SET name     = COALESCE($2, name),
		    address  = COALESCE($3, address),
		    email    = COALESCE($4, email),
		    logo_url = COALESCE($5, logo_url),
		    theme    = COALESCE($6, theme),
		    schedule = COALESCE($7, schedule)
		WHERE id = $1
		RETURNING id, tenant_id, name, slug, address, email, theme, logo_url, schedule, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query,
		id,
		params.Name,
		params.Address,
		params.Email,
		params.LogoURL,
		params.Theme,
		params.Schedule,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return &gym, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gyms WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGymNotFound
	}

	return nil
}
