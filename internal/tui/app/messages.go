package app

// TimerFiredMsg is delivered when a callback scheduled through Scheduler is due.
type TimerFiredMsg struct {
	ID int
}

// ExportDoneMsg is sent when a PDF export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}
