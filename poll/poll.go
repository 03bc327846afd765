// Some helpers for bounded busy-waiting on device state.
package poll

import "time"

// Until repeatedly evaluates cond until it reports true, returns an
// error, or the timeout elapses. The boolean result is false when the
// deadline passed without a match.
func Until(
	timeout time.Duration,
	interval time.Duration,
	cond func() (bool, error),
) (bool, error) {
	deadline := time.Now().Add(timeout)

	for {
		ok, err := cond()
		if ok || err != nil {
			return ok, err
		}

		if time.Now().After(deadline) {
			return false, nil
		}

		time.Sleep(interval)
	}
}
