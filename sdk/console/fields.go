package console

import "strconv"

// JSON numbers decode as float64; gateway IDs sometimes arrive as
// strings. These helpers read record fields without caring which.

func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func uintFromString(s string) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
