package diplotype

import (
	"fmt"
	"time"
)

// Time exists to facilitate time parsing from the reference-table Metadata,
// because SQLite stores times both as unixtime integers and as text strings
// depending on how the row was written.
type Time time.Time

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		vt := time.Unix(which, 0)
		*t = Time(vt)
		return nil
	case int:
		vt := time.Unix(int64(which), 0)
		*t = Time(vt)
		return nil
	case []byte:
		vt, err := time.Parse("2006-01-02 15:04:05", string(which))
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	case string:
		vt, err := time.Parse("2006-01-02 15:04:05", which)
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	}

	return fmt.Errorf("no appropriate type could be found to decode %v", v)
}
