package config

import (
	"maps"
	"slices"
)

// Config holds a decoded settings document. Accessors fall back to a
// default when a key is missing or holds a value of another type.
type Config struct {
	data map[string]any
}

// New wraps data. A nil map gives an empty Config.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string under key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	return lookup(c, key, defaultVal)
}

// Bool returns the bool under key, or defaultVal.
func (c Config) Bool(key string, defaultVal bool) bool {
	return lookup(c, key, defaultVal)
}

// Has reports whether key is set, whatever its value.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Keys returns the set keys in sorted order.
func (c Config) Keys() []string {
	return slices.Sorted(maps.Keys(c.data))
}

func lookup[T any](c Config, key string, defaultVal T) T {
	if v, ok := c.data[key].(T); ok {
		return v
	}
	return defaultVal
}
