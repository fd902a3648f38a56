package encode

// Encode applies the transform to value using key.
// It returns (nil, false) when value is absent.
func Encode(value, key *string) ([]byte, bool) {
	if value == nil {
		return nil, false
	}
	return XOR([]byte(*value), keyBytes(key)), true
}

// Decode reverses Encode for the same key.
func Decode(encoded []byte, key *string) []byte {
	return XOR(encoded, keyBytes(key))
}

// XOR combines each byte of value with the key byte at the same position
// modulo the key length. The result is always a new slice; an empty key
// yields an unchanged copy of value.
func XOR(value, key []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	if len(key) == 0 {
		return out
	}
	for i := range out {
		out[i] ^= key[i%len(key)]
	}
	return out
}

func keyBytes(key *string) []byte {
	if key == nil {
		return nil
	}
	return []byte(*key)
}
