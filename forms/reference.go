package forms

import (
	"strconv"
	"time"
)

// Reference derives the confirmation token shown after a successful
// submission. It is display-only: two submissions in the same millisecond get
// the same token, and the token is never stored.
func Reference(prefix string, at time.Time) string {
	return prefix + strconv.FormatInt(at.UnixMilli(), 10)
}
