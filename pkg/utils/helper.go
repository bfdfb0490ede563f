package utils

import "strconv"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseLimitOffset reads limit/offset query values with clamping.
// Limit defaults to 50 and is capped at 500, matching the API contract.
func ParseLimitOffset(limitStr, offsetStr string) (int, int) {
	limit := ParseInt(limitStr, 50)
	if limit > 500 {
		limit = 500
	}

	offset := 0
	if offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v > 0 {
			offset = v
		}
	}

	return limit, offset
}

// ParseID parses a positive int64 path parameter.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
