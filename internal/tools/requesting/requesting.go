package requesting

import (
	"fmt"
	"net/http"
	"os"
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// CheckResponse folds transport errors and non-2xx statuses into a single
// error, distinguishing timeouts from other connection failures.
func CheckResponse(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("request timed out: %w", err)
		}

		return nil, fmt.Errorf("connection failed: %w", err)
	}

	if !isValidResponse(response.StatusCode) {
		return nil, fmt.Errorf("service returned status code %d", response.StatusCode)
	}

	return response, nil
}
