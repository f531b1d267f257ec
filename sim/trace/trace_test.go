package trace

import (
	"testing"
)

func TestLog_Record_AppendsLine(t *testing.T) {
	// GIVEN an empty log
	l := NewLog()

	// WHEN a line is recorded
	l.Record(Line{Time: 3, Event: "EV_READ_RESP", Detail: "A got (T1, plan) v1 latency=3"})

	// THEN the log contains exactly that line
	if l.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", l.Len())
	}
	if l.Lines()[0].Event != "EV_READ_RESP" {
		t.Errorf("expected EV_READ_RESP, got %s", l.Lines()[0].Event)
	}
}

func TestLog_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a log
	l := NewLog()

	// WHEN lines are recorded out of time order
	l.Record(Line{Time: 5, Event: "EV_CACHE_HIT"})
	l.Record(Line{Time: 5, Event: "EV_READ_RESP"})
	l.Record(Line{Time: 2, Event: "EV_CACHE_MISS"})

	// THEN insertion order is preserved
	lines := l.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{"EV_CACHE_HIT", "EV_READ_RESP", "EV_CACHE_MISS"}
	for i, w := range want {
		if lines[i].Event != w {
			t.Errorf("line %d: got %s, want %s", i, lines[i].Event, w)
		}
	}
}

func TestLine_String_FixedWidth(t *testing.T) {
	tests := []struct {
		line Line
		want string
	}{
		{Line{Time: 0, Event: "EV_CACHE_MISS", Detail: "A (T1, plan)"}, "t=  0    EV_CACHE_MISS | A (T1, plan)"},
		{Line{Time: 115, Event: "EV_WRITE_COMMIT", Detail: "x"}, "t=115  EV_WRITE_COMMIT | x"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.line.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommit_Delay(t *testing.T) {
	c := Commit{Artifact: "(T1, plan)", Version: 2, Writer: "A", RequestedAt: 6, CommittedAt: 9}
	if c.Delay() != 3 {
		t.Errorf("Delay() = %d, want 3", c.Delay())
	}
}
