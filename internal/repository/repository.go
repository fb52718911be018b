// Package repository implements the database queries of the activities API.
// It uses pgx directly (no ORM).
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// ErrNotFound is returned when the requested activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("student already signed up")

// ErrNotRegistered is returned when removing an email that is not in the activity.
var ErrNotRegistered = errors.New("participant not found in activity")

// ActivityRepository handles persistence for activities.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns every activity in creation order with its participants in
// sign-up order. A single statement reads both tables so the result is one
// consistent snapshot.
func (r *ActivityRepository) List(ctx context.Context) (model.ActivitySet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.name, a.description, a.schedule, a.max_participants, p.email
		 FROM activities a
		 LEFT JOIN participants p ON p.activity_name = a.name
		 ORDER BY a.position ASC, p.seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// activityRows is the part of pgx.Rows that collectActivities reads.
type activityRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// collectActivities folds joined activity/participant rows into a set. Rows
// of one activity are contiguous; a NULL email marks an activity with no
// participants.
func collectActivities(rows activityRows) (model.ActivitySet, error) {
	set := model.ActivitySet{}
	for rows.Next() {
		var (
			a     model.Activity
			email *string
		)
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if n := len(set); n == 0 || set[n-1].Name != a.Name {
			a.Participants = []string{}
			set = append(set, a)
		}
		if email != nil {
			last := &set[len(set)-1]
			last.Participants = append(last.Participants, *email)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return set, nil
}

// SeedIfEmpty inserts set when no activity exists yet. It reports whether
// anything was inserted.
func (r *ActivityRepository) SeedIfEmpty(ctx context.Context, set model.ActivitySet) (seeded bool, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Serialise concurrent seeders on the table itself.
	if _, err = tx.Exec(ctx, `LOCK TABLE activities IN EXCLUSIVE MODE`); err != nil {
		return false, fmt.Errorf("lock activities: %w", err)
	}
	var count int
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return false, fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		err = tx.Rollback(ctx)
		return false, err
	}

	now := time.Now().UTC()
	for _, a := range set {
		_, err = tx.Exec(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants)
			 VALUES ($1, $2, $3, $4)`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants,
		)
		if err != nil {
			return false, fmt.Errorf("insert activity %q: %w", a.Name, err)
		}
		for _, email := range a.Participants {
			_, err = tx.Exec(ctx,
				`INSERT INTO participants (id, activity_name, email, signed_up_at)
				 VALUES ($1, $2, $3, $4)`,
				uuid.New().String(), a.Name, email, now,
			)
			if err != nil {
				return false, fmt.Errorf("insert participant %q: %w", email, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

// RegistrationRepository handles persistence for participants.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Book signs email up for activity inside one transaction. The activity row
// is locked with SELECT … FOR UPDATE so concurrent sign-ups for the same
// activity are serialised and capacity cannot be exceeded.
func (r *RegistrationRepository) Book(ctx context.Context, activity, email string) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var capacity int
	err = tx.QueryRow(ctx,
		`SELECT max_participants
		 FROM activities
		 WHERE name = $1
		 FOR UPDATE`,
		activity,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock activity row: %w", err)
	}

	var registered, signedUp int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE email = $2), COUNT(*)
		 FROM participants
		 WHERE activity_name = $1`,
		activity, email,
	).Scan(&registered, &signedUp)
	if err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if registered > 0 {
		return ErrAlreadyRegistered
	}
	if signedUp >= capacity {
		return ErrActivityFull
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO participants (id, activity_name, email, signed_up_at)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), activity, email, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Cancel removes email from activity.
func (r *RegistrationRepository) Cancel(ctx context.Context, activity, email string) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var one int
	err = tx.QueryRow(ctx,
		`SELECT 1 FROM activities WHERE name = $1 FOR UPDATE`,
		activity,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock activity row: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM participants WHERE activity_name = $1 AND email = $2`,
		activity, email,
	)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotRegistered
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
