package game

import "testing"

func validDraw(date string, numbers []int, special int) Draw {
	return Draw{Date: date, Numbers: numbers, SpecialBall: special, Type: MegaMillions}
}

func TestDrawValidate(t *testing.T) {
	cfg := MegaMillionsConfig()

	cases := []struct {
		name string
		draw Draw
		ok   bool
	}{
		{"valid", validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 12), true},
		{"bad date", validDraw("01/02/2024", []int{3, 15, 27, 44, 68}, 12), false},
		{"too few numbers", validDraw("2024-01-02", []int{3, 15, 27, 44}, 12), false},
		{"not ascending", validDraw("2024-01-02", []int{3, 27, 15, 44, 68}, 12), false},
		{"duplicate number", validDraw("2024-01-02", []int{3, 15, 15, 44, 68}, 12), false},
		{"regular out of range", validDraw("2024-01-02", []int{3, 15, 27, 44, 71}, 12), false},
		{"special out of range", validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 26), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draw.Validate(cfg)
			if tc.ok && err != nil {
				t.Fatalf("expected valid draw, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestPositionRange(t *testing.T) {
	cfg := PowerballConfig()
	lo, hi := cfg.PositionRange(0)
	if lo != 1 || hi != 65 {
		t.Fatalf("slot 0 range = [%d,%d], want [1,65]", lo, hi)
	}
	lo, hi = cfg.PositionRange(4)
	if lo != 5 || hi != 69 {
		t.Fatalf("slot 4 range = [%d,%d], want [5,69]", lo, hi)
	}
}

func TestNewHistoryQuarantinesAndDedups(t *testing.T) {
	cfg := MegaMillionsConfig()
	draws := []Draw{
		validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 12),
		validDraw("2024-01-05", []int{1, 2, 3, 4, 5}, 1),
		validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 12), // exact duplicate
		validDraw("2024-01-09", []int{9, 99, 27, 44, 68}, 12), // out of range
	}

	h := NewHistory(cfg, draws)
	if h.Len() != 2 {
		t.Fatalf("expected 2 valid draws, got %d", h.Len())
	}
	if h.Dropped != 2 {
		t.Fatalf("expected 2 quarantined draws, got %d", h.Dropped)
	}
	if h.LatestDate() != "2024-01-05" {
		t.Fatalf("latest date = %s, want 2024-01-05", h.LatestDate())
	}
	if got := h.Draws()[0].Date; got != "2024-01-05" {
		t.Fatalf("history not newest first, got %s", got)
	}
}

func TestHistorySeenIgnoresSpecialBall(t *testing.T) {
	cfg := MegaMillionsConfig()
	h := NewHistory(cfg, []Draw{
		validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 12),
	})

	if !h.Seen([5]int{3, 15, 27, 44, 68}) {
		t.Fatal("expected combination to be seen")
	}
	if h.Seen([5]int{3, 15, 27, 44, 69}) {
		t.Fatal("unexpected combination reported seen")
	}
}

func TestMergeDrawsDedupsByDate(t *testing.T) {
	existing := []Draw{
		validDraw("2024-01-05", []int{1, 2, 3, 4, 5}, 1),
		validDraw("2024-01-02", []int{3, 15, 27, 44, 68}, 12),
	}
	fetched := []Draw{
		validDraw("2024-01-09", []int{6, 7, 8, 9, 10}, 2),
		validDraw("2024-01-05", []int{1, 2, 3, 4, 5}, 1), // already stored
	}

	merged, added := MergeDraws(existing, fetched)
	if added != 1 {
		t.Fatalf("expected 1 new draw, got %d", added)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged draws, got %d", len(merged))
	}
	if merged[0].Date != "2024-01-09" {
		t.Fatalf("merged draws not newest first, got %s", merged[0].Date)
	}
}
