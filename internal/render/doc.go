// Package render draws envelope curves as PNG figures.
//
// A [Request] carries the shared time axis, the raw waveform and the curves.
// The [Mode] selects a layout: [Overlay] puts every curve into one panel,
// [Panels] stacks one panel per curve with the waveform drawn faintly behind
// it. Layouts are looked up in a table, so adding one does not touch [Render].
package render
