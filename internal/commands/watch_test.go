package commands

import (
	"fmt"
	"testing"

	"hivemind/internal/api"
)

func TestNextLogBatch_StreamsPastDisplayCap(t *testing.T) {
	logs := make([]api.LogEntry, 0, 56)
	for i := 1; i <= 55; i++ {
		logs = append(logs, api.LogEntry{Message: fmt.Sprintf("entry %d", i)})
	}

	batch, cursor := nextLogBatch(logs, 0)
	if len(batch) != 55 || cursor != 55 {
		t.Fatalf("first batch: %d entries, cursor %d", len(batch), cursor)
	}

	// Well past the 50-entry display buffer cap, a new backend log line
	// must still reach the stream.
	logs = append(logs, api.LogEntry{Message: "entry 56"})
	batch, cursor = nextLogBatch(logs, cursor)
	if len(batch) != 1 || batch[0].Message != "entry 56" {
		t.Fatalf("batch after cap = %+v", batch)
	}
	if cursor != 56 {
		t.Errorf("cursor = %d, want 56", cursor)
	}
}

func TestNextLogBatch_ShrunkSliceReplays(t *testing.T) {
	logs := []api.LogEntry{{Message: "fresh"}}
	batch, cursor := nextLogBatch(logs, 5)
	if len(batch) != 1 || batch[0].Message != "fresh" {
		t.Fatalf("batch = %+v", batch)
	}
	if cursor != 1 {
		t.Errorf("cursor = %d, want 1", cursor)
	}
}

func TestNextLogBatch_NoNewEntries(t *testing.T) {
	logs := []api.LogEntry{{Message: "a"}, {Message: "b"}}
	batch, cursor := nextLogBatch(logs, 2)
	if len(batch) != 0 || cursor != 2 {
		t.Errorf("batch = %d entries, cursor = %d", len(batch), cursor)
	}
}
