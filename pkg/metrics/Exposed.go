package metrics

var PushAttempts = NewCounter("mirror_push_attempts_total", "Total mirror push attempts", []string{"repository", "result"})
var PushTerminalFailures = NewCounter("mirror_push_terminal_failures_total", "Mirror pushes abandoned after exhausting attempts", []string{"repository"})
var PushAborted = NewCounter("mirror_push_aborted_total", "Mirror pushes aborted before the first attempt", []string{"repository", "reason"})
var PushDuration = NewHistogram("mirror_push_duration_seconds", "Duration of a single mirror push attempt", []string{"repository"}, PushBuckets)
var RetriesPending = NewGauge("mirror_push_retries_pending", "Mirror pushes waiting for their retry delay", []string{})
