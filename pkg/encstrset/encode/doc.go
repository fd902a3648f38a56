/*
Package encode implements the reversible byte transform applied to every value
before it is stored in a set.

# Transform

A value is combined byte by byte with a repeating key using exclusive-or:

	encoded[i] = value[i] ^ key[i % len(key)]

The result always has the length of the value. Applying the transform twice
with the same key yields the original value, so Decode and Encode are the same
operation.

Without a usable key (nil or empty) the transform is the identity.

# Absent Values

Values and keys are passed as *string so that an absent argument (nil) can be
told apart from an empty one. Encode reports an absent value through its second
return value:

	enc, ok := encode.Encode(nil, nil)  // enc == nil, ok == false
	enc, ok = encode.Encode(&empty, nil) // enc == []byte{}, ok == true

This is obfuscation, not encryption. Anyone holding the key, or enough encoded
values, can recover the plaintext.
*/
package encode
