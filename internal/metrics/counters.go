package metrics

import "sync/atomic"

var (
	TotalRows     int64
	ProcessedRows int64
	InsertedRows  int64
	IssueCount    int64
)

func IncProcessed(n int64) {
	atomic.AddInt64(&ProcessedRows, n)
}

func IncIssues(n int64) {
	atomic.AddInt64(&IssueCount, n)
}
