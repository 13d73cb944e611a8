package models

import "strconv"

// FormatID renders a numeric primary key the way cache keys and influx
// tags expect it.
func FormatID(val uint64) string {
	return strconv.FormatUint(val, 10)
}
