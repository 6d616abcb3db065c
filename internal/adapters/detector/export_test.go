package detector

// SetIsTerminal replaces the TTY check and returns a restore function.
func SetIsTerminal(fn func() bool) (restore func()) {
	orig := isTerminal
	isTerminal = fn
	return func() { isTerminal = orig }
}
