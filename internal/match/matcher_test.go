package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labrota/rota/internal/domain"
)

func roster(pairs ...[2]string) []domain.Member {
	members := make([]domain.Member, 0, len(pairs))
	for _, pair := range pairs {
		members = append(members, domain.Member{GivenName: pair[0], FamilyName: pair[1]})
	}
	return members
}

func TestMatcherMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		members []domain.Member
		text    string
		want    []int
	}{
		{
			name:    "titles and affiliation stripped",
			members: roster([2]string{"Jane", "Doe"}),
			text:    "Dr. Jane A. Doe (Neuro Lab)",
			want:    []int{0},
		},
		{
			name:    "family substring alone is not enough",
			members: roster([2]string{"Jane", "Doe"}),
			text:    "John Doering",
			want:    nil,
		},
		{
			name:    "plain name",
			members: roster([2]string{"Ada", "Lovelace"}),
			text:    "Ada Lovelace",
			want:    []int{0},
		},
		{
			name:    "multi word family matches on last token",
			members: roster([2]string{"Vincent", "van Gogh"}),
			text:    "Vincent van Gogh",
			want:    []int{0},
		},
		{
			name:    "ambiguous text credits every match",
			members: roster([2]string{"Jane", "Doe"}, [2]string{"Janet", "Doe"}),
			text:    "Janet Doe",
			want:    []int{0, 1},
		},
		{
			name:    "tokens split across phrases do not match",
			members: roster([2]string{"Jane", "Doe"}),
			text:    "Jane, and separately Doe",
			want:    nil,
		},
		{
			name:    "empty text",
			members: roster([2]string{"Jane", "Doe"}),
			text:    "",
			want:    nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := New(tc.members)
			assert.Equal(t, tc.want, m.Match(tc.text))
		})
	}
}
