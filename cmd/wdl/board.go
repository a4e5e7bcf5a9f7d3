package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/lexicon"
	"github.com/powellquiring/wordlesolver/predictor"
)

var (
	tileStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	tileColors = [...]lipgloss.Color{
		feedback.Wrong:     "244",
		feedback.Misplaced: "178",
		feedback.Correct:   "34",
	}
	boardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Width(lexicon.WordLength + 1)
	coldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	// colour of the current round dot, round 1 first
	hotColors = []lipgloss.Color{"34", "34", "34", "178", "178", "160"}
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

func renderTitle(round int) string {
	return titleStyle.Render(fmt.Sprintf("WordleSolver - Round %d", round)) + " " + renderRounds(round)
}

// renderRounds draws one dot per round, played rounds grey and the current one coloured
func renderRounds(round int) string {
	round = min(max(round, 1), predictor.MaxRounds)
	dots := []string{}
	for range round - 1 {
		dots = append(dots, coldStyle.Render("●"))
	}
	dots = append(dots, lipgloss.NewStyle().Foreground(hotColors[round-1]).Render("●"))
	for range predictor.MaxRounds - round {
		dots = append(dots, "○")
	}
	return strings.Join(dots, " ")
}

func renderTile(letter byte, code feedback.Code) string {
	return tileStyle.Background(tileColors[code]).Render(string(letter))
}

// renderBoard draws every round, the unplayed ones as blank tiles
func renderBoard(history []predictor.Turn) string {
	rows := make([]string, 0, predictor.MaxRounds)
	for i := range max(predictor.MaxRounds, len(history)) {
		var row strings.Builder
		for p := range lexicon.WordLength {
			if i < len(history) && p < len(history[i].Guess) {
				row.WriteString(renderTile(history[i].Guess[p], history[i].Feedback[p]))
			} else {
				row.WriteString(renderTile(' ', feedback.Wrong))
			}
		}
		rows = append(rows, row.String())
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderLetters tabulates the letters known at each position
func renderLetters(c *predictor.Constraints) string {
	t := table.New().Headers("Class", "1st", "2nd", "3rd", "4th", "5th")
	for _, row := range []struct {
		name string
		code feedback.Code
	}{
		{"Correct Letters", feedback.Correct},
		{"Wrong Letters", feedback.Wrong},
		{"Misplaced Letters", feedback.Misplaced},
	} {
		cells := []string{row.name}
		for _, letters := range c.ByPosition(row.code) {
			cells = append(cells, letters.String())
		}
		t.Row(cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, "Predictor Letters", t.Render())
}

func renderSuggestions(words []string) string {
	cells := make([]string, len(words))
	for i, word := range words {
		style := suggestionStyle
		if i == 0 {
			style = style.Bold(true)
		}
		cells[i] = style.Render(word)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
