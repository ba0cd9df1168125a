package pgconv

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"plateshare-server/internal/domain/document"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInvalidUUID = errors.New("invalid uuid")

// ParseUUID accepts only the canonical hyphenated form used in URLs.
func ParseUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return uuid.Nil, ErrInvalidUUID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}

// DocumentToJSONB encodes a document for a `$n::jsonb` parameter.
func DocumentToJSONB(doc document.Document) (string, error) {
	if doc == nil {
		doc = document.Document{}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DocumentFromJSONB(raw []byte) (document.Document, error) {
	doc := document.Document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
