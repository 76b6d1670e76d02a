package sampling

import "time"

func elapsed(from, to time.Time) time.Duration {
	return to.Sub(from)
}

func stamp() time.Time {
	return time.Now() // want "time.Now reads the wall clock; take the instant as a parameter"
}

func age(t time.Time) time.Duration {
	return time.Since(t) // want "time.Since reads the wall clock; take the instant as a parameter"
}
