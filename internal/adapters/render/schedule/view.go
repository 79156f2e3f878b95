// Package schedule renders the speaker queue and the pool snapshot for
// the terminal.
package schedule

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/labrota/rota/internal/domain"
)

// RenderSchedule formats the ordered speaker queue.
func RenderSchedule(s domain.Schedule) string {
	st := newStyles()
	lines := []string{
		st.title.Render("Lab meeting schedule"),
		st.header.Render(fmt.Sprintf("slots: %d", s.Len())),
	}

	if s.Len() == 0 {
		lines = append(lines, st.empty.Render("No schedule has been written yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, s.Len())
	for i, slot := range s.Slots {
		rows = append(rows, []string{strconv.Itoa(i + 1), string(slot.Name), slot.Affiliation})
	}

	lines = append(lines, renderTable(
		[]string{"#", "name", "uni"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderPool formats the persisted pool snapshot: who is still owed a
// turn and when everyone last presented.
func RenderPool(snapshot domain.Snapshot) string {
	st := newStyles()
	owed := len(snapshot.PoolMembers())
	lines := []string{
		st.title.Render("Rotation pool"),
		st.header.Render(fmt.Sprintf("members: %d, owed a turn: %d", len(snapshot.Entries), owed)),
	}

	if len(snapshot.Entries) == 0 {
		lines = append(lines, st.empty.Render("No pool snapshot found. Run a scheduling pass first."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if owed == 0 {
		lines = append(lines, st.warning.Render("Pool exhausted: the next run resets to the full eligible set."))
	}

	rows := make([][]string, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		rows = append(rows, []string{
			string(entry.Name),
			entry.Affiliation,
			owedLabel(entry.InPool),
			lastPresentedLabel(entry.LastPresented),
		})
	}

	lines = append(lines, renderTable(
		[]string{"name", "uni", "owed", "last presentation"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func owedLabel(inPool bool) string {
	if inPool {
		return "yes"
	}
	return "no"
}

func lastPresentedLabel(lastPresented float64) string {
	if lastPresented <= domain.NeverPresented {
		return "never"
	}
	return strconv.FormatFloat(lastPresented, 'f', 3, 64)
}
