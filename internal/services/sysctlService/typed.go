package sysctlservice

// String queries path and decodes the value as a string.
func String(k Kernel, path KeyPath) (string, error) {
	b, err := QueryBytes(k, path)
	if err != nil {
		return "", err
	}
	return DecodeString(b)
}

// StringByName resolves name and decodes its value as a string.
func StringByName(k Kernel, name string) (string, error) {
	b, err := QueryName(k, name)
	if err != nil {
		return "", err
	}
	return DecodeString(b)
}

// Value queries path and decodes the value as T.
func Value[T Integer](k Kernel, path KeyPath) (T, error) {
	b, err := QueryBytes(k, path)
	if err != nil {
		return 0, err
	}
	return Decode[T](b)
}

// ValueByName resolves name and decodes its value as T.
func ValueByName[T Integer](k Kernel, name string) (T, error) {
	b, err := QueryName(k, name)
	if err != nil {
		return 0, err
	}
	return Decode[T](b)
}
