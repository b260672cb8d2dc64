package domain

import "context"

// Service appends automation log records. Record is fire-and-continue: a
// failed append is logged and swallowed so the pipeline's own outcome never
// depends on the audit sink.
type Service interface {
	Record(ctx context.Context, logType LogType, operation, message string, metadata map[string]any)
	List(ctx context.Context, limit int) ([]AutomationLog, error)
}
