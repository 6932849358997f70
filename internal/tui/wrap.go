// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typesprint/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(target string, statuses []model.CharStatus) []styledRune {
	cursorIndex := -1
	for i, st := range statuses {
		if st == model.Current {
			cursorIndex = i
			break
		}
	}
	words := findWords(target)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(target))
	for i := 0; i < len(target); i++ {
		ch := rune(target[i])
		displayed := ch
		status := model.Untouched
		if i < len(statuses) {
			status = statuses[i]
		}
		style := pendingStyle
		switch status {
		case model.Correct:
			style = correctStyle
		case model.Incorrect:
			style = incorrectStyle
			if ch == ' ' {
				displayed = '•'
			}
		case model.Current:
			style = cursorStyle
		default:
			if ch != ' ' && cursorIndex >= 0 && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: ch == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(target string) []wordRange {
	words := []wordRange{}
	start := -1
	for i := 0; i < len(target); i++ {
		if target[i] == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return &words[len(words)-1]
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits, or mid-word when none does.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
