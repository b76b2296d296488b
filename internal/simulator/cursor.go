package simulator

import (
	"flooow/pkg/domain"
	"flooow/pkg/serrors"
	"flooow/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorSeparator = "|"

// encodeCursor renders a page position as "<created_at RFC3339Nano>|<id>".
func encodeCursor(c *storage.SimulationCursor) string {
	if c == nil {
		return ""
	}

	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

func decodeCursor(s string) (*storage.SimulationCursor, error) {
	if s == "" {
		return nil, nil //nolint: nilnil
	}

	ts, id, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.SimulationCursor{CreatedAt: createdAt, ID: domain.SimulationID(parsedID)}, nil
}
