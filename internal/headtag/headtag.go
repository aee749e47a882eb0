// Package headtag locates the closing head tag of an HTML document and
// splices content in front of it.
package headtag

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

var headName = []byte("head")

// Find returns the byte offset of the first closing head tag, or -1 when the
// document has none. The document is lexed rather than substring-searched so
// that </head> inside comments, scripts, or attribute values is not matched,
// and case variants like </HEAD> are.
func Find(doc []byte) int {
	in := parse.NewInputBytes(doc)
	lexer := html.NewLexer(in)

	for {
		tt, data := lexer.Next()
		switch tt {
		case html.ErrorToken:
			// EOF or malformed input, either way no closing head tag
			return -1
		case html.EndTagToken:
			if bytes.Equal(bytes.ToLower(lexer.Text()), headName) {
				return in.Offset() - len(data)
			}
		}
	}
}

// Inject splices fragment immediately before the first closing head tag and
// returns the new document. Documents without a closing head tag are
// returned unchanged.
func Inject(doc, fragment []byte) []byte {
	idx := Find(doc)
	if idx < 0 {
		return doc
	}

	out := make([]byte, 0, len(doc)+len(fragment))
	out = append(out, doc[:idx]...)
	out = append(out, fragment...)
	out = append(out, doc[idx:]...)
	return out
}
