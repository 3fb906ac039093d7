package badge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A scanned badge decodes to a tagged identifier of the form "user:<id>".
// Only the decoded string reaches this package; QR mechanics live elsewhere.
const prefix = "user:"

var ErrMalformed = errors.New("malformed badge identifier")

func ParseUserID(scanned string) (int64, error) {
	const op = "badge.ParseUserID"

	raw, ok := strings.CutPrefix(strings.TrimSpace(scanned), prefix)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, ErrMalformed)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrMalformed)
	}

	return id, nil
}
