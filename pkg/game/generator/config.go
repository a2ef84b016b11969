package generator

import "strconv"

// Config maps are parsed leniently: unknown keys and malformed values are
// ignored and the default stays in place.

func intFromMap(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func floatFromMap(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func boolFromMap(cfg map[string]string, key string, dst *bool) {
	if v, ok := cfg[key]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
