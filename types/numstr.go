package types

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrNotANumber is returned when a Uint64Str is decoded from something other than a JSON number or string.
var ErrNotANumber = errors.New("value is neither a JSON number nor a JSON string")

// Uint64Str is a uint64 that decodes from both JSON numbers and JSON strings, and encodes to a JSON string.
type Uint64Str uint64

func (n Uint64Str) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(n), 10)), nil
}

// UnmarshalJSON tries the input as a numeric literal first and falls back to a quoted decimal.
func (n *Uint64Str) UnmarshalJSON(input []byte) error {
	res := gjson.ParseBytes(input)

	var raw string
	switch res.Type {
	case gjson.Number:
		raw = res.Raw
	case gjson.String:
		raw = res.Str
	default:
		return fmt.Errorf("%w: %s", ErrNotANumber, string(input))
	}

	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 %q: %w", raw, err)
	}
	*n = Uint64Str(val)
	return nil
}

func (n Uint64Str) String() string {
	return strconv.FormatUint(uint64(n), 10)
}
