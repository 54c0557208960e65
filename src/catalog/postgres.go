package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS agents (
    id               TEXT PRIMARY KEY,
    name             TEXT NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    long_description TEXT NOT NULL DEFAULT '',
    price            DOUBLE PRECISION NOT NULL DEFAULT 0,
    currency         TEXT NOT NULL DEFAULT 'ETH',
    rating           DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_uses       BIGINT NOT NULL DEFAULT 0,
    author           TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL DEFAULT 'micro',
    image            TEXT NOT NULL DEFAULT '',
    tags             TEXT[] NOT NULL DEFAULT '{}',
    verified         BOOLEAN NOT NULL DEFAULT FALSE,
    created_at       TEXT NOT NULL DEFAULT ''
);`

// PostgresCatalog serves the read-only catalog out of Postgres.
type PostgresCatalog struct {
	DB *pgxpool.Pool
}

// NewPostgresCatalog connects to Postgres and returns a catalog backed by it.
func NewPostgresCatalog(ctx context.Context, connStr string) (*PostgresCatalog, error) {
	db, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return &PostgresCatalog{DB: db}, nil
}

// EnsureSchema creates the agents table if it does not exist.
func (pc *PostgresCatalog) EnsureSchema(ctx context.Context) error {
	if pc == nil || pc.DB == nil {
		return nil
	}
	_, err := pc.DB.Exec(ctx, postgresSchema)
	return err
}

// Seed upserts profiles, preserving catalog order via created ids.
func (pc *PostgresCatalog) Seed(ctx context.Context, profiles []Profile) error {
	if pc == nil || pc.DB == nil {
		return nil
	}
	for _, p := range profiles {
		_, err := pc.DB.Exec(ctx, `
			INSERT INTO agents (id, name, description, long_description, price, currency, rating, total_uses, author, category, image, tags, verified, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				long_description = EXCLUDED.long_description,
				price = EXCLUDED.price,
				currency = EXCLUDED.currency,
				rating = EXCLUDED.rating,
				total_uses = EXCLUDED.total_uses,
				author = EXCLUDED.author,
				category = EXCLUDED.category,
				image = EXCLUDED.image,
				tags = EXCLUDED.tags,
				verified = EXCLUDED.verified,
				created_at = EXCLUDED.created_at;`,
			p.ID, p.Name, p.Description, p.LongDescription, p.Price, p.Currency,
			p.Rating, p.TotalUses, p.Author, string(p.Category), p.Image, p.Tags,
			p.Verified, p.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// List returns every profile ordered by id.
func (pc *PostgresCatalog) List(ctx context.Context) ([]Profile, error) {
	if pc == nil || pc.DB == nil {
		return nil, nil
	}
	rows, err := pc.DB.Query(ctx, `
		SELECT id, name, description, long_description, price, currency, rating, total_uses, author, category, image, tags, verified, created_at
		FROM agents
		ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Get retrieves one profile by id.
func (pc *PostgresCatalog) Get(ctx context.Context, id string) (Profile, error) {
	if pc == nil || pc.DB == nil {
		return Profile{}, ErrNotFound
	}
	rows, err := pc.DB.Query(ctx, `
		SELECT id, name, description, long_description, price, currency, rating, total_uses, author, category, image, tags, verified, created_at
		FROM agents
		WHERE id = $1;`, id)
	if err != nil {
		return Profile{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Profile{}, err
		}
		return Profile{}, ErrNotFound
	}
	return scanProfile(rows)
}

func scanProfile(rows pgx.Rows) (Profile, error) {
	var p Profile
	var category string
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.LongDescription,
		&p.Price, &p.Currency, &p.Rating, &p.TotalUses, &p.Author, &category,
		&p.Image, &p.Tags, &p.Verified, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.Category = Category(category)
	return p, nil
}

// Close releases the underlying pool.
func (pc *PostgresCatalog) Close() {
	if pc != nil && pc.DB != nil {
		pc.DB.Close()
	}
}
