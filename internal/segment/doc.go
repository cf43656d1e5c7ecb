// Package segment turns raw lyric text into ordered display lines.
//
// Lyric files downloaded alongside recordings carry presentation noise:
// section labels like [Verse 1], repeat markers like (x2), decorative music
// glyphs, line numbers, and separator rules. Split strips that markup with a
// fixed sequence of rewrite rules, breaks the remainder into lines, and
// re-segments each line at CJK sentence punctuation while keeping quoted
// spans intact. The output is what an LRC player should display, one unit
// per timestamp.
package segment
