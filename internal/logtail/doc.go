// Package logtail reads and follows plain-text log files.
//
// # Overview
//
// Read extracts the last N lines of a file without loading the whole file
// into memory. Follow does the same for a backlog and then keeps streaming
// every appended line to a callback until its context is cancelled. The
// application uses Follow to feed external log files into the console.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// Example usage:
//
//	lines, err := logtail.Read("/var/log/app.log", 20)
//	if err != nil {
//		return fmt.Errorf("tail: %w", err)
//	}
//
// # Following
//
// Follow watches the file's directory with fsnotify so it sees the file being
// created, removed, rotated or truncated:
//
//   - Write: read from the last offset and emit complete lines
//   - Create: start over at offset zero of the new file
//   - Remove/Rename: close the handle and wait for a new file
//   - Size below offset: treat as truncation and restart at zero
//
// A trailing fragment without a newline is held until the rest of the line
// arrives. Carriage returns before the newline are dropped.
//
// The callback runs on Follow's goroutine. Callers that need to hand lines to
// another loop (the Bubble Tea program, for example) should post them from
// the callback rather than doing work there.
//
// # Error Handling
//
// Read returns nil, nil for non-existent files (graceful degradation).
// Other errors (permission denied, I/O errors) are returned wrapped.
// Follow returns an error when the directory cannot be watched or the file
// cannot be read; it returns nil on cancellation.
package logtail
