package domain

// Slot is one seat in the output schedule.
type Slot struct {
	Name        MemberID
	Affiliation string
}

// Schedule is the ordered speaker queue produced by one run. A member
// appears at most once.
type Schedule struct {
	Slots []Slot
}

func (s Schedule) Len() int { return len(s.Slots) }

func (s Schedule) Contains(id MemberID) bool {
	for _, slot := range s.Slots {
		if slot.Name == id {
			return true
		}
	}
	return false
}
