// internal/functions/loanbot/models.go
package loanbot

import "strconv"

// Session attribute keys. Values round-trip as strings through the external
// session store.
const (
	attrBotTry  = "botTry"
	attrFileURL = "urlfile"
)

// retryState is the typed view of the fallback retry counter. The
// string-encoded representation exists only at the session-attribute boundary.
type retryState struct {
	Attempts int
}

// loadRetryState reads the counter from session attributes; absent or
// unparseable values count as zero attempts.
func loadRetryState(attrs map[string]string) retryState {
	raw, ok := attrs[attrBotTry]
	if !ok {
		return retryState{}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return retryState{}
	}
	return retryState{Attempts: n}
}

// store writes the counter back as a string-encoded integer.
func (r retryState) store(attrs map[string]string) {
	attrs[attrBotTry] = strconv.Itoa(r.Attempts)
}

// clearRetryState removes the counter from session attributes.
func clearRetryState(attrs map[string]string) {
	delete(attrs, attrBotTry)
}
