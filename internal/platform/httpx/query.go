package httpx

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Query helpers distinguish "parameter absent" (nil) from "present but
// empty/zero" so optional search filters keep presence semantics.

// QueryString returns a pointer to the parameter value, nil when absent.
func QueryString(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}

// QueryFloat parses a decimal query parameter, nil when absent.
func QueryFloat(r *http.Request, key string) (*float64, error) {
	if !r.URL.Query().Has(key) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", key, err)
	}
	return &v, nil
}

// QueryInt64 parses an integer query parameter, nil when absent.
func QueryInt64(r *http.Request, key string) (*int64, error) {
	if !r.URL.Query().Has(key) {
		return nil, nil
	}
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", key, err)
	}
	return &v, nil
}

// QueryDate parses a YYYY-MM-DD query parameter, nil when absent.
func QueryDate(r *http.Request, key string) (*time.Time, error) {
	if !r.URL.Query().Has(key) {
		return nil, nil
	}
	v, err := time.Parse("2006-01-02", r.URL.Query().Get(key))
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", key, err)
	}
	return &v, nil
}

// QueryIntDefault parses an integer query parameter with a fallback.
func QueryIntDefault(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}
