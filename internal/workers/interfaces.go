// Package workers runs the server's background jobs next to the HTTP
// listener. The only job today is [SessionSweeper], which purges expired
// session rows.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and must
// return promptly once it is.
type Worker interface {
	Run(ctx context.Context)
}
