package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateTrip inserts a saved trip for a user and returns the stored row
func (db *DB) CreateTrip(ctx context.Context, userID uuid.UUID, destination, duration, budget, companions string, activities []string) (*Trip, error) {
	var trip Trip
	err := db.pool.QueryRow(ctx,
		`INSERT INTO trips (user_id, destination, duration, budget, companions, activities)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, destination, duration, budget, companions, activities, created_at`,
		userID, destination, duration, budget, companions, activities,
	).Scan(&trip.ID, &trip.UserID, &trip.Destination, &trip.Duration, &trip.Budget,
		&trip.Companions, &trip.Activities, &trip.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return &trip, nil
}

// GetTrip retrieves a trip by ID scoped to its owner. Returns nil when no
// row exists for that user.
func (db *DB) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*Trip, error) {
	var trip Trip
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, destination, duration, budget, companions, activities, created_at
		 FROM trips WHERE id = $1 AND user_id = $2`,
		tripID, userID,
	).Scan(&trip.ID, &trip.UserID, &trip.Destination, &trip.Duration, &trip.Budget,
		&trip.Companions, &trip.Activities, &trip.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListTrips retrieves a user's saved trips, most recent first
func (db *DB) ListTrips(ctx context.Context, userID uuid.UUID) ([]Trip, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, destination, duration, budget, companions, activities, created_at
		 FROM trips WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var trip Trip
		if err := rows.Scan(&trip.ID, &trip.UserID, &trip.Destination, &trip.Duration,
			&trip.Budget, &trip.Companions, &trip.Activities, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// DeleteTrip deletes a trip scoped to its owner. Returns false when no row
// matched.
func (db *DB) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM trips WHERE id = $1 AND user_id = $2`,
		tripID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
