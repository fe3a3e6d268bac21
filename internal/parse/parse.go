// Package parse normalizes provider-supplied numeric text. Provider
// fields are untyped strings and occasionally blank for illiquid
// symbols; ingestion must not abort on a single malformed field.
package parse

import (
	"log"
	"strconv"
	"strings"
)

// FloatOrDefault parses s as a float64. Blank input yields def without
// comment; malformed input is logged and yields def.
func FloatOrDefault(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("[WARN] invalid number format: %q", s)
		return def
	}
	return v
}

// Int64OrDefault parses s as an int64, with the same fallback rules as
// FloatOrDefault. Used for volumes.
func Int64OrDefault(s string, def int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Printf("[WARN] invalid volume format: %q", s)
		return def
	}
	return v
}
