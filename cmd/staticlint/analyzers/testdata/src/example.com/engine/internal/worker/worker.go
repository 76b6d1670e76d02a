package worker

import "time"

func cutoff(age time.Duration) time.Time {
	return time.Now().Add(-age)
}
