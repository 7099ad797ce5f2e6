package domain

import (
	"fmt"
	"strconv"
	"time"
)

// NewCustomRuleID derives a stable identifier for a custom constraint from its
// prompt text: user_<base36 of |32-bit rolling hash|>_<unix millis>.
//
// Two rules with identical prompt text created in the same millisecond would
// collide. That residual risk is accepted; strengthening the derivation would
// invalidate ids already embedded in snapshots written by older clients.
func NewCustomRuleID(prompt string, now time.Time) string {
	return fmt.Sprintf("user_%s_%d", promptHash(prompt), now.UnixMilli())
}

// promptHash is the multiply-by-31 rolling hash folded into a signed 32-bit
// integer, absolute value, rendered in base 36.
func promptHash(s string) string {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
