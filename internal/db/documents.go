package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const documentColumns = `id, user_id, doc_type, number, expiry_date, details, created_at, updated_at`

func scanDocument(row pgx.Row) (*TravelDocument, error) {
	var doc TravelDocument
	var details []byte
	err := row.Scan(&doc.ID, &doc.UserID, &doc.Type, &doc.Number, &doc.ExpiryDate,
		&details, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &doc.Details); err != nil {
			return nil, fmt.Errorf("failed to decode document details: %w", err)
		}
	}
	return &doc, nil
}

// CreateDocument inserts a wallet document for a user and returns the stored row
func (db *DB) CreateDocument(ctx context.Context, userID uuid.UUID, docType, number, expiryDate string, details DocumentDetails) (*TravelDocument, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document details: %w", err)
	}

	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`INSERT INTO travel_documents (user_id, doc_type, number, expiry_date, details)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+documentColumns,
		userID, docType, number, expiryDate, detailsJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// GetDocument retrieves a wallet document by ID scoped to its owner.
// Returns nil when no row exists for that user.
func (db *DB) GetDocument(ctx context.Context, userID, docID uuid.UUID) (*TravelDocument, error) {
	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`SELECT `+documentColumns+`
		 FROM travel_documents WHERE id = $1 AND user_id = $2`,
		docID, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListDocuments retrieves a user's wallet documents, most recent first
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID) ([]TravelDocument, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+documentColumns+`
		 FROM travel_documents WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []TravelDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// UpdateDocument replaces a wallet document's fields scoped to its owner.
// Returns nil when no row exists for that user.
func (db *DB) UpdateDocument(ctx context.Context, userID, docID uuid.UUID, docType, number, expiryDate string, details DocumentDetails) (*TravelDocument, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document details: %w", err)
	}

	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`UPDATE travel_documents
		 SET doc_type = $3, number = $4, expiry_date = $5, details = $6, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+documentColumns,
		docID, userID, docType, number, expiryDate, detailsJSON,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// DeleteDocument deletes a wallet document scoped to its owner. Returns
// false when no row matched.
func (db *DB) DeleteDocument(ctx context.Context, userID, docID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM travel_documents WHERE id = $1 AND user_id = $2`,
		docID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
