package data

import (
	"errors"
	"strconv"
	"strings"
)

// A valid year is either a JSON number (1999) or a quoted numeric string ("1999").
var ErrInvalidYearFormat = errors.New("invalid year format")

const (
	MinYear Year = 1888
	MaxYear Year = 9999
)

type Year int32

func (y Year) String() string {
	return strconv.FormatInt(int64(y), 10)
}

func (y Year) MarshalJSON() ([]byte, error) {
	return []byte(y.String()), nil
}

// UnmarshalJSON accepts both encodings so datasets that store the year as a
// string load to the same numeric value as those that store a number.
func (y *Year) UnmarshalJSON(jsonValue []byte) error {
	raw := string(jsonValue)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return ErrInvalidYearFormat
		}
		raw = unquoted
	}

	parsed, err := ParseYear(raw)
	if err != nil {
		return err
	}

	*y = parsed
	return nil
}

// ParseYear converts form or query input to a Year. Surrounding whitespace is
// ignored; anything that is not a base 10 int32 is rejected.
func ParseYear(s string) (Year, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, ErrInvalidYearFormat
	}
	return Year(i), nil
}
