package auth

// hashPrefix is the demo one-way "transform". Anything built on it is
// recoverable by stripping the prefix; it exists only so the login flow has
// a stored-credential comparison to exercise.
const hashPrefix = "fakehashed"

// HashPassword applies the demo transform to a plaintext password.
// It has no security value and must not survive into a real deployment.
func HashPassword(plaintext string) string {
	return hashPrefix + plaintext
}

// VerifyPassword reports whether plaintext matches the stored demo hash.
func VerifyPassword(plaintext, hashed string) bool {
	return HashPassword(plaintext) == hashed
}
