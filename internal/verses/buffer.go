package verses

import "strconv"

// MaxVerse is the highest verse number in the song.
const MaxVerse = 99

// Buffer pairs the raw text of a numeric input field with the last value that
// passed validation. The raw side always reflects the latest keystroke, even
// when it is not a number; the parsed side only moves through [Buffer.resolve]
// or [Buffer.overwrite].
type Buffer struct {
	raw    string
	parsed uint
}

// Raw returns the exact text currently held by the field.
func (b Buffer) Raw() string { return b.raw }

// Parsed returns the last committed verse number.
func (b Buffer) Parsed() uint { return b.parsed }

// IsValid reports whether the raw text reparses to exactly the committed value.
// The model never needs this to operate; it exists for diagnostics and tests.
func (b Buffer) IsValid() bool {
	n, err := strconv.ParseUint(b.raw, 10, 32)
	return err == nil && uint(n) == b.parsed
}

// overwrite sets both sides of the buffer from a known-legal verse number.
// Used for programmatic transitions (full song, next verse) that bypass
// validation entirely.
func (b *Buffer) overwrite(n uint) {
	b.parsed = n
	b.raw = strconv.FormatUint(uint64(n), 10)
}

// resolve stores raw verbatim and attempts to commit it as a verse number.
// ok decides whether a successfully parsed candidate is legal against the
// sibling field; fallback is the value committed when raw does not parse at
// all (the minimal legal value, so a stale out-of-range parse never survives
// garbage input).
func (b *Buffer) resolve(raw string, ok func(uint) bool, fallback uint) {
	b.raw = raw
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		b.parsed = fallback
		return
	}
	if v := uint(n); ok(v) {
		b.parsed = min(v, MaxVerse)
	}
}

// recheck gives a buffer whose raw text was previously rejected a chance to
// commit now that the sibling field moved. Unlike resolve it leaves parsed
// untouched when the raw text does not parse.
func (b *Buffer) recheck(ok func(uint) bool) {
	n, err := strconv.ParseUint(b.raw, 10, 32)
	if err != nil {
		return
	}
	if v := uint(n); ok(v) {
		b.parsed = min(v, MaxVerse)
	}
}
