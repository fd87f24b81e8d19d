package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Rupees formats a currency value with the ₹ sign, Indian digit grouping, and
// paise only when the value is fractional.
func Rupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	out := sign + "₹" + groupIndian(whole)
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	return out
}

// groupIndian applies lakh/crore digit grouping (1,23,45,678).
func groupIndian(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// Count formats a whole-number metric for a stat card.
func Count(n int) string {
	return strconv.Itoa(n)
}

// Date formats the timestamp in the provided layout (defaults to 02 Jan 2006).
func Date(ts time.Time, layout string) string {
	if layout == "" {
		layout = "02 Jan 2006"
	}
	return ts.In(time.Local).Format(layout)
}
