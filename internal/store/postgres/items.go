package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/trouvaille/lostfound/internal/model"
)

// --- Found items ---

type foundItems struct{ db *sql.DB }

func (r *foundItems) Create(ctx context.Context, it *model.FoundItem) (*model.FoundItem, error) {
	out := *it
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO found_items (id, description, found_date, found_time, location, content_info, image_url, image_filename, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, out.ID, out.Description, out.FoundDate, out.FoundTime, out.Location, out.ContentInfo, out.ImageURL, out.ImageFilename, out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert found item: %w", err)
	}
	out.PossibleMatches = nil
	return &out, nil
}

func (r *foundItems) Get(ctx context.Context, id string) (*model.FoundItem, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, description, found_date, found_time, location, content_info, image_url, image_filename, created_at
        FROM found_items WHERE id = $1
    `, id)
	it, err := scanFoundItem(row)
	if err != nil {
		return nil, err
	}
	it.PossibleMatches, err = matchIDs(ctx, r.db,
		`SELECT lost_item_id FROM possible_matches WHERE found_item_id = $1 ORDER BY lost_item_id`, id)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *foundItems) List(ctx context.Context) ([]*model.FoundItem, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, description, found_date, found_time, location, content_info, image_url, image_filename, created_at
        FROM found_items ORDER BY created_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.FoundItem
	for rows.Next() {
		it, err := scanFoundItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, it := range items {
		it.PossibleMatches, err = matchIDs(ctx, r.db,
			`SELECT lost_item_id FROM possible_matches WHERE found_item_id = $1 ORDER BY lost_item_id`, it.ID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *foundItems) Update(ctx context.Context, it *model.FoundItem) (*model.FoundItem, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE found_items
        SET description = $1, found_date = $2, found_time = $3, location = $4, content_info = $5, image_url = $6, image_filename = $7
        WHERE id = $8
    `, it.Description, it.FoundDate, it.FoundTime, it.Location, it.ContentInfo, it.ImageURL, it.ImageFilename, it.ID)
	if err != nil {
		return nil, fmt.Errorf("update found item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return r.Get(ctx, it.ID)
}

func (r *foundItems) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM found_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete found item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Lost items ---

type lostItems struct{ db *sql.DB }

func (r *lostItems) Create(ctx context.Context, it *model.LostItem) (*model.LostItem, error) {
	out := *it
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO lost_items (id, description, lost_date, lost_time, location, content_info, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, out.ID, out.Description, out.LostDate, out.LostTime, out.Location, out.ContentInfo, out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert lost item: %w", err)
	}
	out.PossibleMatches = nil
	return &out, nil
}

func (r *lostItems) Get(ctx context.Context, id string) (*model.LostItem, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, description, lost_date, lost_time, location, content_info, created_at
        FROM lost_items WHERE id = $1
    `, id)
	it, err := scanLostItem(row)
	if err != nil {
		return nil, err
	}
	it.PossibleMatches, err = matchIDs(ctx, r.db,
		`SELECT found_item_id FROM possible_matches WHERE lost_item_id = $1 ORDER BY found_item_id`, id)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *lostItems) List(ctx context.Context) ([]*model.LostItem, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, description, lost_date, lost_time, location, content_info, created_at
        FROM lost_items ORDER BY created_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.LostItem
	for rows.Next() {
		it, err := scanLostItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, it := range items {
		it.PossibleMatches, err = matchIDs(ctx, r.db,
			`SELECT found_item_id FROM possible_matches WHERE lost_item_id = $1 ORDER BY found_item_id`, it.ID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *lostItems) Update(ctx context.Context, it *model.LostItem) (*model.LostItem, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE lost_items
        SET description = $1, lost_date = $2, lost_time = $3, location = $4, content_info = $5
        WHERE id = $6
    `, it.Description, it.LostDate, it.LostTime, it.Location, it.ContentInfo, it.ID)
	if err != nil {
		return nil, fmt.Errorf("update lost item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return r.Get(ctx, it.ID)
}

func (r *lostItems) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lost_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lost item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Matches ---

type matches struct{ db *sql.DB }

func (r *matches) Replace(ctx context.Context, pairs []model.MatchPair) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace matches: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM possible_matches`); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}
	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO possible_matches (found_item_id, lost_item_id) VALUES ($1,$2)`,
			p.FoundID, p.LostID); err != nil {
			return fmt.Errorf("insert match %s/%s: %w", p.FoundID, p.LostID, err)
		}
	}
	return tx.Commit()
}

// --- Users ---

type users struct{ db *sql.DB }

func (r *users) Create(ctx context.Context, u *model.User) (*model.User, error) {
	out := *u
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO users (id, username, password_hash, is_admin, created_at)
        VALUES ($1,$2,$3,$4,$5)
    `, out.ID, out.Username, out.PasswordHash, out.IsAdmin, out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: username %q is taken", model.ErrConflict, out.Username)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &out, nil
}

func (r *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `
        SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id = $1
    `, id))
}

func (r *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `
        SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = $1
    `, username))
}

// --- scan helpers ---

type rowScanner interface{ Scan(dest ...any) error }

func scanFoundItem(row rowScanner) (*model.FoundItem, error) {
	var it model.FoundItem
	err := row.Scan(&it.ID, &it.Description, &it.FoundDate, &it.FoundTime, &it.Location,
		&it.ContentInfo, &it.ImageURL, &it.ImageFilename, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanLostItem(row rowScanner) (*model.LostItem, error) {
	var it model.LostItem
	err := row.Scan(&it.ID, &it.Description, &it.LostDate, &it.LostTime, &it.Location,
		&it.ContentInfo, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func matchIDs(ctx context.Context, db *sql.DB, query, id string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var mid string
		if err := rows.Scan(&mid); err != nil {
			return nil, err
		}
		ids = append(ids, mid)
	}
	return ids, rows.Err()
}
