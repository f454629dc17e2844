package fetch

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jackpotiq/domain/game"
)

// specialClass is the list-item class carrying the special ball per game.
var specialClass = map[game.Type]string{
	game.Powerball:    "powerball",
	game.MegaMillions: "mega-ball",
}

// ParseResults extracts draws from a yearly archive page. Each draw is a
// table row with a centered date link ("Wednesday March 26, 2025") and a
// results list holding five balls plus the special ball; double-play rows
// use a different list class and are skipped. Rows that fail to parse are
// skipped rather than failing the whole page.
func ParseResults(r io.Reader, t game.Type) ([]game.Draw, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}

	var draws []game.Draw
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		draw, ok := parseRow(row, t)
		if ok {
			draws = append(draws, draw)
		}
	})
	return draws, nil
}

func parseRow(row *goquery.Selection, t game.Type) (game.Draw, bool) {
	dateLink := row.Find(`td[style="text-align: center;"] a`).First()
	if dateLink.Length() == 0 {
		return game.Draw{}, false
	}
	date, err := parseDrawDate(dateLink.Text())
	if err != nil {
		return game.Draw{}, false
	}

	// main draw only, not the double-play list
	list := row.Find(fmt.Sprintf("ul.multi.results.%s", gameSlug[t])).First()
	if list.Length() == 0 {
		return game.Draw{}, false
	}

	var numbers []int
	list.Find("li.ball").EachWithBreak(func(_ int, ball *goquery.Selection) bool {
		n, err := strconv.Atoi(strings.TrimSpace(ball.Text()))
		if err != nil {
			return true
		}
		numbers = append(numbers, n)
		return len(numbers) < game.DrawSize
	})
	if len(numbers) != game.DrawSize {
		return game.Draw{}, false
	}

	specialText := list.Find("li." + specialClass[t]).First().Text()
	special, err := strconv.Atoi(strings.TrimSpace(specialText))
	if err != nil {
		return game.Draw{}, false
	}

	return game.Draw{
		Date:        date,
		Numbers:     numbers,
		SpecialBall: special,
		Type:        t,
	}, true
}

// parseDrawDate turns "Wednesday March 26, 2025" into "2025-03-26".
func parseDrawDate(text string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) < 4 {
		return "", fmt.Errorf("unrecognized date %q", text)
	}
	cleaned := fmt.Sprintf("%s %s, %s", parts[1], strings.TrimSuffix(parts[2], ","), parts[3])
	parsed, err := time.Parse("January 2, 2006", cleaned)
	if err != nil {
		return "", err
	}
	return parsed.Format(game.DateLayout), nil
}
