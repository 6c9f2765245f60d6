// package song generates the lyrics of "99 Bottles of Beer".
//
// Everything here is pure: verse text is computed from the verse number alone,
// so the package has no state and no failure modes beyond its documented
// clamping of out-of-range input.
package song

import (
	"fmt"
	"strings"
)

// MaxVerse is the opening verse of the song.
const MaxVerse = 99

// bottles renders the counted subject of a verse: "99 bottles of beer",
// "1 bottle of beer", "no more bottles of beer".
func bottles(n uint) string {
	switch n {
	case 0:
		return "no more bottles of beer"
	case 1:
		return "1 bottle of beer"
	default:
		return fmt.Sprintf("%d bottles of beer", n)
	}
}

// action renders the middle clause of a verse, which depends on how many
// bottles remain before the action is taken.
func action(n uint) string {
	switch n {
	case 0:
		return "Go to the store and buy some more"
	case 1:
		return "Take it down and pass it around"
	default:
		return "Take one down and pass it around"
	}
}

// Verse returns the two lines of verse n. Verse 0 is the closing verse that
// restocks the wall; input above [MaxVerse] is clamped.
func Verse(n uint) []string {
	if n > MaxVerse {
		n = MaxVerse
	}

	next := MaxVerse
	if n > 0 {
		next = int(n) - 1
	}

	opening := bottles(n)
	return []string{
		fmt.Sprintf("%s on the wall, %s.", capitalize(opening), opening),
		fmt.Sprintf("%s, %s on the wall.", action(n), bottles(uint(next))),
	}
}

// Lines expands a verse range into the flat sequence of text lines to
// display, verses start down to end inclusive. An inverted range (start below
// end) yields the single verse at start.
func Lines(start, end uint) []string {
	if end > start {
		end = start
	}

	var lines []string
	for n := int(start); n >= int(end); n-- {
		lines = append(lines, Verse(uint(n))...)
	}
	return lines
}

// Sing renders a verse range as one string, verses separated by blank lines.
func Sing(start, end uint) string {
	if end > start {
		end = start
	}

	verses := make([]string, 0, start-end+1)
	for n := int(start); n >= int(end); n-- {
		verses = append(verses, strings.Join(Verse(uint(n)), "\n"))
	}
	return strings.Join(verses, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
