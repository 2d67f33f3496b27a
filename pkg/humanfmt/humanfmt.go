// Package humanfmt provides human-readable formatting for bytes, counts and durations.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// byteUnits is the decimal (SI) scale used by Magnitude. The empty prefix
// means plain bytes; scaling stops at the last entry.
var byteUnits = [...]string{"", "k", "M", "G", "T"}

// Magnitude formats a non-negative byte count using decimal units
// (kB, MB, GB, TB) with two fractional digits, e.g. "2.00 MB".
//
// Values of 1000 TB and above are still reported in TB.
func Magnitude(v float64) string {
	i := 0
	for v >= 1000 && i < len(byteUnits)-1 {
		v /= 1000
		i++
	}
	return fmt.Sprintf("%.2f %sB", v, byteUnits[i])
}

// Bytes formats a byte count with Magnitude.
func Bytes(b uint64) string {
	return Magnitude(float64(b))
}

// Examples: "1.23s", "45.6ms", "789µs", "1m30s", "2h15m".
func Duration(d time.Duration) string {
	if d < 0 {
		return d.String()
	}

	switch {
	case d >= time.Hour:
		h := d / time.Hour
		m := (d % time.Hour) / time.Minute
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	case d >= time.Minute:
		m := d / time.Minute
		s := (d % time.Minute) / time.Second
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Count formats an object count. Examples: "1.23M", "456K", "789".
func Count(n uint64) string {
	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatUint(n, 10)
	}
}
