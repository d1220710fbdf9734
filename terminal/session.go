package terminal

// With opens the terminal, runs fn and restores the terminal on every exit path.
// A panic in fn is re-raised after the terminal is restored.
func With(fn func(*Screen) error) error {
	scr, err := Open()
	if err != nil {
		return err
	}
	return run(scr, fn)
}

func run(scr *Screen, fn func(*Screen) error) error {
	defer scr.Close()
	return fn(scr)
}
