// package verses models the verse range picker: two linked numeric fields
// whose legal values constrain each other.
//
// The song counts down, so the range runs from start (high) to end (low) and
// the domain rule after every mutation is 0 <= end <= start <= [MaxVerse].
// Users type freely into either field; text that does not (yet) describe a
// legal number is kept for display while the committed range holds its last
// good value. There are no error returns because unparsable input is an
// expected transient state, not a failure.
package verses

// Range holds the two linked verse fields. The zero value is a valid range
// pinned at verse 0; [New] is provided for symmetry with the rest of the
// codebase.
type Range struct {
	start Buffer
	end   Buffer
}

// New returns a range at the zero verse with both fields displaying "0".
func New() *Range {
	r := &Range{}
	r.start.overwrite(0)
	r.end.overwrite(0)
	return r
}

// NewFull returns a range spanning the whole song, as after [Range.FullSong].
func NewFull() *Range {
	r := &Range{}
	r.FullSong()
	return r
}

// SetStart feeds a keystroke's worth of raw text into the start field.
//
// The text is stored verbatim for re-display. If it parses to s, s is
// committed (clamped to MaxVerse) only when s is not below the current end;
// otherwise the committed start holds. If it does not parse, start falls back
// to the current end, the minimal legal value. The end field's raw text is
// then rechecked against the new start, so an end edit that was rejected
// earlier can take effect once start makes room for it.
func (r *Range) SetStart(raw string) {
	end := r.end.parsed
	r.start.resolve(raw, func(s uint) bool { return s >= end }, end)

	start := r.start.parsed
	r.end.recheck(func(e uint) bool { return e <= start })
}

// SetEnd is the mirror of [Range.SetStart]: the end field resolves against
// the current start, then start is rechecked against the new end.
func (r *Range) SetEnd(raw string) {
	start := r.start.parsed
	r.end.resolve(raw, func(e uint) bool { return e <= start }, start)

	end := r.end.parsed
	r.start.recheck(func(s uint) bool { return s >= end })
}

// FullSong resets the range to the entire song, verses 99 down to 0.
func (r *Range) FullSong() {
	r.start.overwrite(MaxVerse)
	r.end.overwrite(0)
}

// NextVerse shrinks the range by one verse from the bottom. Once the final
// verse has been sung (end at 0) the song starts over from the top: both
// fields jump to 99, collapsing the range to the single opening verse.
func (r *Range) NextVerse() {
	if r.end.parsed == 0 {
		r.start.overwrite(MaxVerse)
		r.end.overwrite(MaxVerse)
		return
	}
	r.end.overwrite(r.end.parsed - 1)
}

// Bounds returns the committed verse range for rendering.
func (r *Range) Bounds() (start, end uint) {
	return r.start.parsed, r.end.parsed
}

// Start returns the start field's buffer for display.
func (r *Range) Start() Buffer { return r.start }

// End returns the end field's buffer for display.
func (r *Range) End() Buffer { return r.end }

// Len returns the number of verses the range spans.
func (r *Range) Len() uint {
	return r.start.parsed - r.end.parsed + 1
}
