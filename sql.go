package suffix

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the sql.Scanner interface for database compatibility.
// It accepts the 26-character string form, the raw 16-byte payload, or
// nil (which leaves the suffix unchanged).
func (s *Suffix) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		parsed, err := Parse(src)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		if len(src) == 16 {
			copy(s[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		parsed, err := Parse(string(src))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("suffix: cannot scan type %T into Suffix", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (s Suffix) Value() (driver.Value, error) {
	return s.String(), nil
}
