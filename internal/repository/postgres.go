package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gig-market/internal/marketerrors"
	model "gig-market/internal/models"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PostgresRepo is the production MarketDB implementation. HireBid runs inside
// a database transaction, so the single-winner guarantee holds across
// processes, not just goroutines in one process.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo connects to Postgres and ensures the schema exists
func NewPostgresRepo(connStr string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS gigs (
			id UUID PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description VARCHAR(2000) NOT NULL,
			budget NUMERIC(12,2) NOT NULL CHECK (budget > 0),
			owner_id UUID NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bids (
			id UUID PRIMARY KEY,
			gig_id UUID NOT NULL REFERENCES gigs(id),
			freelancer_id UUID NOT NULL,
			message VARCHAR(500) NOT NULL,
			price NUMERIC(12,2) NOT NULL CHECK (price > 0),
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// Authoritative guard against double bids; the service pre-check
		// only exists for a friendlier error message.
		`CREATE UNIQUE INDEX IF NOT EXISTS bids_gig_freelancer_idx ON bids (gig_id, freelancer_id)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &PostgresRepo{db: db}, nil
}

// Close releases the underlying connection pool
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

const gigColumns = "id, title, description, budget, owner_id, status, created_at"
const bidColumns = "id, gig_id, freelancer_id, message, price, status, created_at"

func scanGig(row interface{ Scan(...any) error }) (model.Gig, error) {
	var gig model.Gig
	err := row.Scan(&gig.GigID, &gig.Title, &gig.Description, &gig.Budget, &gig.OwnerID, &gig.Status, &gig.CreatedAt)
	return gig, err
}

func scanBid(row interface{ Scan(...any) error }) (model.Bid, error) {
	var bid model.Bid
	err := row.Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message, &bid.Price, &bid.Status, &bid.CreatedAt)
	return bid, err
}

// CreateGig stores a new gig
func (r *PostgresRepo) CreateGig(ctx context.Context, gig model.Gig) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO gigs (id, title, description, budget, owner_id, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, gig.GigID, gig.Title, gig.Description, gig.Budget, gig.OwnerID, gig.Status, gig.CreatedAt)
	if err != nil {
		return fmt.Errorf("create gig %s: %w", gig.GigID, err)
	}
	return nil
}

// GetGigByID returns a single gig by ID
func (r *PostgresRepo) GetGigByID(ctx context.Context, gigID string) (model.Gig, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gigColumns+` FROM gigs WHERE id = $1`, gigID)
	gig, err := scanGig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListOpenGigs returns open gigs, optionally filtered by title, newest first
func (r *PostgresRepo) ListOpenGigs(ctx context.Context, search string) ([]model.Gig, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+gigColumns+`
	FROM gigs
	WHERE status = 'open' AND ($1 = '' OR title ILIKE '%' || $1 || '%')
	ORDER BY created_at DESC
	`, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list open gigs: %w", err)
	}
	defer rows.Close()

	return collectGigs(rows)
}

// ListGigsByOwner returns all gigs created by a user, newest first
func (r *PostgresRepo) ListGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+gigColumns+`
	FROM gigs
	WHERE owner_id = $1
	ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list gigs for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectGigs(rows)
}

func collectGigs(rows *sql.Rows) ([]model.Gig, error) {
	gigs := make([]model.Gig, 0)
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gig: %w", err)
		}
		gigs = append(gigs, gig)
	}
	return gigs, rows.Err()
}

// CreateBid records a freelancer's bid. The unique index on
// (gig_id, freelancer_id) is the authoritative duplicate guard.
func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO bids (id, gig_id, freelancer_id, message, price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, bid.BidID, bid.GigID, bid.FreelancerID, bid.Message, bid.Price, bid.Status, bid.CreatedAt)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("create bid for gig %s by user %s: %w", bid.GigID, bid.FreelancerID, marketerrors.ErrDuplicateBid)
		case pqForeignKeyViolation:
			return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotFound)
		}
	}
	return fmt.Errorf("create bid for gig %s: %w", bid.GigID, err)
}

// GetBidByID returns a single bid by ID
func (r *PostgresRepo) GetBidByID(ctx context.Context, bidID string) (model.Bid, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, bidID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetBidForGig returns the bid a freelancer placed on a gig, if any
func (r *PostgresRepo) GetBidForGig(ctx context.Context, gigID, freelancerID string) (model.Bid, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT `+bidColumns+` FROM bids WHERE gig_id = $1 AND freelancer_id = $2
	`, gigID, freelancerID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid for gig %s by user %s: %w", gigID, freelancerID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid for gig %s by user %s: %w", gigID, freelancerID, err)
	}
	return bid, nil
}

// ListBidsByGig returns all bids for a gig, newest first
func (r *PostgresRepo) ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+bidColumns+` FROM bids WHERE gig_id = $1 ORDER BY created_at DESC
	`, gigID)
	if err != nil {
		return nil, fmt.Errorf("list bids for gig %s: %w", gigID, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

// ListBidsByFreelancer returns all bids placed by a user, newest first
func (r *PostgresRepo) ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+bidColumns+` FROM bids WHERE freelancer_id = $1 ORDER BY created_at DESC
	`, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("list bids for user %s: %w", freelancerID, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

func collectBids(rows *sql.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// HireBid performs the hire transition in one transaction. The conditional
// UPDATE on status = 'open' is the race check: it takes the row lock, so of
// any number of concurrent attempts exactly one matches the predicate and
// commits; the rest see zero rows and map to ErrGigAlreadyAssigned. The bid
// fan-out runs on the same transaction and rolls back with it.
func (r *PostgresRepo) HireBid(ctx context.Context, gigID, bidID string) (model.Gig, model.Bid, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: begin: %w", bidID, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
	UPDATE gigs SET status = 'assigned'
	WHERE id = $1 AND status = 'open'
	RETURNING `+gigColumns, gigID)
	gig, err := scanGig(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Either the gig is gone or somebody else won the race.
		var status string
		if lookupErr := tx.QueryRowContext(ctx, `SELECT status FROM gigs WHERE id = $1`, gigID).Scan(&status); lookupErr != nil {
			if errors.Is(lookupErr, sql.ErrNoRows) {
				return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrGigNotFound)
			}
			return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, lookupErr)
		}
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, marketerrors.ErrGigAlreadyAssigned)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, err)
	}

	row = tx.QueryRowContext(ctx, `
	UPDATE bids SET status = 'hired'
	WHERE id = $1 AND gig_id = $2
	RETURNING `+bidColumns, bidID, gigID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, err)
	}

	if _, err := tx.ExecContext(ctx, `
	UPDATE bids SET status = 'rejected'
	WHERE gig_id = $1 AND id <> $2 AND status = 'pending'
	`, gigID, bidID); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: reject others: %w", bidID, gigID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: commit: %w", bidID, gigID, err)
	}

	return gig, bid, nil
}
