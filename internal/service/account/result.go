package account

// RegisterResult is returned by Register. Password is the generated
// plaintext and is shown exactly once.
type RegisterResult struct {
	User     string
	Password string
}
