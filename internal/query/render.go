package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/league"
)

const clarification = "I could not tell what you are asking. Try one of these:\n" +
	"- Compare Nacional vs Peñarol\n" +
	"- How is Liverpool doing?\n" +
	"- Who is the leading scorer?\n" +
	"- Top 5 scorers\n" +
	"- Show me the standings"

func periodLabel(season int, stage string) string {
	name, ok := league.StageNames[stage]
	if !ok {
		name = stage
	}
	return fmt.Sprintf("%s %d", name, season)
}

func noDataText(season int, stage string) string {
	return fmt.Sprintf("There is no data for %s yet.", periodLabel(season, stage))
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func renderTeamStatus(r analytics.StandingsRow, season int, stage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is %s in %s with %d points from %d matches (%dW %dD %dL, goals %d-%d).",
		r.Team, ordinal(r.Position), periodLabel(season, stage), r.Points, r.Played,
		r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst)
	if r.Last5 != nil {
		fmt.Fprintf(&b, " Form: %s.", *r.Last5)
	}
	return b.String()
}

func renderTopScorer(s analytics.Scorer, season int, stage string) string {
	return fmt.Sprintf("The top scorer of %s is %s (%s) with %d goals.",
		periodLabel(season, stage), s.Player, s.Team, s.Goals)
}

func renderScorers(list []analytics.Scorer, season int, stage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d scorers of %s:", len(list), periodLabel(season, stage))
	for i, s := range list {
		fmt.Fprintf(&b, "\n%d. %s (%s) - %d goals", i+1, s.Player, s.Team, s.Goals)
	}
	return b.String()
}

func renderTable(rows []analytics.StandingsRow, season int, stage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s standings:", periodLabel(season, stage))
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%d. %s - %d pts (%d MP, GD %s)", r.Position, r.Team, r.Points, r.Played, signed(r.GoalDifference))
	}
	return b.String()
}
