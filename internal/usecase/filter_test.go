package usecase

import (
	"testing"

	"github.com/fploracle/fpl-analytics/internal/domain/player"
)

func TestPlayerFilter_EmptyMatchesEverything(t *testing.T) {
	t.Parallel()

	players := testSnapshot().Players
	got := PlayerFilter{}.Apply(players)

	if len(got) != len(players) {
		t.Fatalf("empty filter should be a no-op: got=%d want=%d", len(got), len(players))
	}
}

func TestPlayerFilter_Predicates(t *testing.T) {
	t.Parallel()

	players := testSnapshot().Players

	cases := []struct {
		name   string
		filter PlayerFilter
		want   []int
	}{
		{
			name:   "position set",
			filter: PlayerFilter{Positions: []string{player.PositionMidfielder}},
			want:   []int{12, 21},
		},
		{
			name:   "team set",
			filter: PlayerFilter{Teams: []int{2}},
			want:   []int{21},
		},
		{
			name:   "price range inclusive",
			filter: PlayerFilter{MinPrice: 7.2, MaxPrice: 8.0},
			want:   []int{13, 21},
		},
		{
			name:   "min points",
			filter: PlayerFilter{MinPoints: 150},
			want:   []int{12, 21},
		},
		{
			name:   "min ownership",
			filter: PlayerFilter{MinOwnership: 30.0},
			want:   []int{12, 21},
		},
		{
			name:   "predicates are ANDed",
			filter: PlayerFilter{Positions: []string{player.PositionMidfielder}, Teams: []int{1}},
			want:   []int{12},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.filter.Apply(players)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d players, want %d", len(got), len(tc.want))
			}
			for i, p := range got {
				if p.ID != tc.want[i] {
					t.Fatalf("position %d: got player %d want %d", i, p.ID, tc.want[i])
				}
			}
		})
	}
}

func TestPlayerFilter_Idempotent(t *testing.T) {
	t.Parallel()

	players := testSnapshot().Players
	filter := PlayerFilter{MinPoints: 100, MaxPrice: 10.0}

	once := filter.Apply(players)
	twice := filter.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("filter must be idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter reapplication changed element %d", i)
		}
	}
}

func TestPlayerFilter_OrderIndependent(t *testing.T) {
	t.Parallel()

	players := testSnapshot().Players

	byPosition := PlayerFilter{Positions: []string{player.PositionMidfielder}}
	byPoints := PlayerFilter{MinPoints: 160}

	first := byPoints.Apply(byPosition.Apply(players))
	second := byPosition.Apply(byPoints.Apply(players))

	if len(first) != len(second) {
		t.Fatalf("predicate order changed result size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("predicate order changed element %d", i)
		}
	}
}
