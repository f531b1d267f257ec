package trace

// Log collects trace lines in the order events were handled.
type Log struct {
	lines []Line
}

// NewLog creates a Log ready for recording.
func NewLog() *Log {
	return &Log{lines: make([]Line, 0)}
}

// Record appends a trace line.
func (l *Log) Record(line Line) {
	l.lines = append(l.lines, line)
}

// Lines returns the recorded lines. The returned slice must not be modified.
func (l *Log) Lines() []Line {
	return l.lines
}

// Len returns the number of recorded lines.
func (l *Log) Len() int {
	return len(l.lines)
}
