package ultimateguitar

import (
	"errors"
	"testing"

	"github.com/handiism/chord-compiler/internal/model"
)

func TestSite_ExtractBody(t *testing.T) {
	site := Site{StartDelimiter: "+--+", EndDelimiter: "/* end */"}

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "body after second delimiter",
			text: "header +--+ chrome +--+\n  BODY TEXT \n/* end */ footer",
			want: "BODY TEXT",
		},
		{
			name: "multi-line body",
			text: "+--++--+\n[Verse]\nEm7  G\nToday is gonna be\n/* end */",
			want: "[Verse]\nEm7  G\nToday is gonna be",
		},
		{
			name:    "no start delimiter",
			text:    "BODY TEXT /* end */",
			wantErr: true,
		},
		{
			name:    "single start delimiter",
			text:    "+--+ BODY TEXT /* end */",
			wantErr: true,
		},
		{
			name:    "no end delimiter",
			text:    "+--+ x +--+ BODY TEXT",
			wantErr: true,
		},
		{
			name:    "end delimiter only before body",
			text:    "/* end */ +--+ x +--+ BODY TEXT",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := site.ExtractBody(tt.text)
			if tt.wantErr {
				if !errors.Is(err, model.ErrParse) {
					t.Errorf("expected ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSite_ExtractBody_DefaultDelimiters(t *testing.T) {
	text := "Wonderwall chords\n" + DefaultStartDelimiter + "\n| tabbed by someone |\n" +
		DefaultStartDelimiter + "\n\nEm7 G Dsus4 A7sus4\n\n" + DefaultEndDelimiter + "\nmore chrome"

	got, err := DefaultSite().ExtractBody(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Em7 G Dsus4 A7sus4" {
		t.Errorf("ExtractBody() = %q", got)
	}
}
