package consult

import (
	"testing"
	"time"
)

func TestLedger(t *testing.T) {
	led := NewLedger()
	if led.Len() != 0 {
		t.Fatalf("new ledger Len() = %d, want 0", led.Len())
	}
	if got := led.Recent(5); len(got) != 0 {
		t.Fatalf("Recent(5) on empty ledger = %v, want empty", got)
	}

	now := time.Now().UTC()
	e1 := Entry{Timestamp: now, Specialist: "Historical_Expert", Question: "q1", Response: "r1"}
	e2 := Entry{Timestamp: now.Add(time.Minute), Specialist: "Geography_Specialist", Question: "q2", Response: "r2"}
	e3 := Entry{Timestamp: now.Add(2 * time.Minute), Specialist: "Detroit_Historian", Question: "q3", Response: "r3"}
	led.Record(e1)
	led.Record(e2)
	led.Record(e3)

	if led.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", led.Len())
	}

	// reverse-chronological
	recent := led.Recent(2)
	if len(recent) != 2 || recent[0] != e3 || recent[1] != e2 {
		t.Errorf("Recent(2) = %v, want [e3 e2]", recent)
	}

	// n larger than the ledger
	all := led.Recent(10)
	if len(all) != 3 || all[0] != e3 || all[2] != e1 {
		t.Errorf("Recent(10) = %v, want [e3 e2 e1]", all)
	}

	// reading does not mutate
	if led.Len() != 3 {
		t.Errorf("Recent() mutated the ledger: Len() = %d", led.Len())
	}
}
