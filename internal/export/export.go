// Package export writes a preset's markup payload out as a named file.
package export

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.seanlatimer.dev/amhub/internal/catalog"
)

const (
	MimeType  = "text/xml"
	extension = ".xml"
)

var ErrExportFailed = errors.New("export failed")

// Sink saves bytes under a file name. Implementations must tolerate being
// called again immediately for another preset.
type Sink interface {
	Save(name, mimeType string, content []byte) error
}

type Result struct {
	Name  string
	Bytes int
}

// FileName swaps every whitespace run in title for a single underscore and
// appends the .xml extension. Nothing else in the title is touched. A title
// containing a path separator yields a name FileSink refuses.
func FileName(title string) string {
	var b strings.Builder
	b.Grow(len(title) + len(extension))
	inRun := false
	for i := 0; i < len(title); {
		r, size := utf8.DecodeRuneInString(title[i:])
		if isSpace(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
		} else {
			inRun = false
			b.WriteString(title[i : i+size])
		}
		i += size
	}
	b.WriteString(extension)
	return b.String()
}

// isSpace matches the ECMAScript \s class: Unicode White_Space minus U+0085,
// plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}

// Export hands the preset's XML to the sink unchanged.
func Export(sink Sink, p catalog.Preset) (Result, error) {
	name := FileName(p.Title)
	content := []byte(p.XML)
	if err := sink.Save(name, MimeType, content); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrExportFailed, name, err)
	}
	return Result{Name: name, Bytes: len(content)}, nil
}
