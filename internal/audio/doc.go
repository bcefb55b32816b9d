// Package audio reads song lists out of an MP3 library.
//
// # Library Scan
//
// ScanLibrary walks a directory tree and turns every MP3 file carrying both
// a title and an artist ID3 frame into a model.SongRequest:
//
//	songs, err := audio.ScanLibrary(ctx, "/home/me/Music")
//	if err != nil {
//	    // the directory could not be walked
//	}
//
// Files without a readable tag, or missing either frame, are skipped. The
// result is ordered by file path, so the same library always yields the
// same batch.
package audio
