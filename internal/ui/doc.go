// Package ui implements the interactive verse picker using bubbletea's Elm architecture.
//
// The screen shows two numeric fields (start and end of the verse range), two
// "buttons" bound to control chords (ctrl+f for the full song, ctrl+n for the
// next verse) and a scrollable pane of the rendered verses.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Every keystroke in a focused field is forwarded to the
// verses.Range model, which owns the cross-field validation: fields echo raw
// text verbatim while the rendered verse list only ever reflects the
// committed range.
package ui
