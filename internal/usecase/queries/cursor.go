package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"vacation-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// Cursor is opaque to clients. After names the last request of the previous page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor points at the last item of a page, ordered by requestedAt then id.
func EncodeAfterCursor(requestedAt time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(requestedAt.UnixNano(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

// DecodeAfterCursor errors are marked with ErrInvalidCursor.
func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	invalid := func(err error, msg string) (time.Time, uuid.UUID, error) {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, msg), ErrInvalidCursor)
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return invalid(err, "cursor encoding")
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return invalid(errs.New("unsupported cursor version"), "cursor version")
	}

	nanos, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return invalid(errs.New("expected <nanos>-<uuid>"), "cursor format")
	}

	at, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return invalid(err, "cursor timestamp")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return invalid(err, "cursor id")
	}

	return time.Unix(0, at).UTC(), id, nil
}

// ValidateLimit falls back to the default page size and caps it at MaxListLimit.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
