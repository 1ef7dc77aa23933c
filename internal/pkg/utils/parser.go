package utils

// Accessors for rows decoded from Supabase into generic maps. JSON numbers
// arrive as float64; absent keys and explicit nulls are treated the same.

func MapStringValue(row map[string]interface{}, key string) (string, bool) {
	raw, ok := row[key]
	if !ok || raw == nil {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func MapStringPtr(row map[string]interface{}, key string) *string {
	value, ok := MapStringValue(row, key)
	if !ok {
		return nil
	}
	return &value
}

func MapInt64Value(row map[string]interface{}, key string) (int64, bool) {
	raw, ok := row[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch value := raw.(type) {
	case float64:
		return int64(value), true
	case int64:
		return value, true
	default:
		return 0, false
	}
}

func MapIntPtr(row map[string]interface{}, key string) *int {
	value, ok := MapInt64Value(row, key)
	if !ok {
		return nil
	}
	intValue := int(value)
	return &intValue
}
