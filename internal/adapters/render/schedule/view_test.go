package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labrota/rota/internal/domain"
)

func TestRenderScheduleListsSpeakersInOrder(t *testing.T) {
	t.Parallel()

	out := RenderSchedule(domain.Schedule{Slots: []domain.Slot{
		{Name: "Jane Doe", Affiliation: "jd100"},
		{Name: "John Smith", Affiliation: "js200"},
	}})

	assert.Contains(t, out, "slots: 2")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "John Smith")
	assert.Less(t, strings.Index(out, "Jane Doe"), strings.Index(out, "John Smith"))
}

func TestRenderScheduleEmpty(t *testing.T) {
	t.Parallel()

	out := RenderSchedule(domain.Schedule{})
	assert.Contains(t, out, "No schedule has been written yet.")
}

func TestRenderPool(t *testing.T) {
	t.Parallel()

	out := RenderPool(domain.Snapshot{Entries: []domain.SnapshotEntry{
		{Name: "Jane Doe", Affiliation: "jd100", InPool: true, LastPresented: 2024.667},
		{Name: "John Smith", Affiliation: "js200", InPool: false, LastPresented: domain.NeverPresented},
	}})

	assert.Contains(t, out, "members: 2, owed a turn: 1")
	assert.Contains(t, out, "2024.667")
	assert.Contains(t, out, "never")
}

func TestRenderPoolExhaustedWarns(t *testing.T) {
	t.Parallel()

	out := RenderPool(domain.Snapshot{Entries: []domain.SnapshotEntry{
		{Name: "Jane Doe", InPool: false, LastPresented: 2026.25},
	}})

	assert.Contains(t, out, "Pool exhausted")
}

func TestRenderPoolEmptySnapshot(t *testing.T) {
	t.Parallel()

	out := RenderPool(domain.Snapshot{})
	assert.Contains(t, out, "No pool snapshot found.")
}
