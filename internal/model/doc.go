// Package model defines the core data structures used throughout
// the chord compiler.
//
// # SongRequest
//
// SongRequest is one (title, artist) pair from the input batch:
//
//	song := model.SongRequest{Title: "Wonderwall", Artist: "Oasis"}
//
// # ChordDocument
//
// ChordDocument is the retrieved chord/lyric sheet. Render returns the
// output file content, a banner line followed by the body:
//
//	**** Wonderwall by Oasis ****
//	[Intro]
//	Em7 G Dsus4 A7sus4
//
// # Outcome
//
// Outcome is the per-song result of a run. Failures carry a classified
// *Error whose Kind is one of InputError, NetworkError, NotFoundError or
// ParseError; use errors.Is with the Err* sentinels or KindOf to branch.
package model
