package headtag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want int
	}{
		{
			name: "simple document",
			doc:  `<html><head><title>x</title></head><body></body></html>`,
			want: 28,
		},
		{
			name: "uppercase tag",
			doc:  `<html><HEAD></HEAD></html>`,
			want: 12,
		},
		{
			name: "no closing head tag",
			doc:  `<html><body><p>hello</p></body></html>`,
			want: -1,
		},
		{
			name: "empty document",
			doc:  ``,
			want: -1,
		},
		{
			name: "closing tag inside comment is skipped",
			doc:  `<html><head><!-- </head> --></head><body></body></html>`,
			want: 28,
		},
		{
			name: "closing tag inside script is skipped",
			doc:  `<html><head><script>var s = "</head>";</script></head></html>`,
			want: 47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find([]byte(tt.doc))
			require.Equal(t, tt.want, got)
			if tt.want >= 0 {
				// The reported offset is the start of the closing tag
				assert.True(t, strings.HasPrefix(strings.ToLower(tt.doc[got:]), "</head>"))
			}
		})
	}
}

func TestInject(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		fragment string
		want     string
	}{
		{
			name:     "fragment lands before closing head tag",
			doc:      `<html><head></head><body></body></html>`,
			fragment: `<style>.a{}</style>`,
			want:     `<html><head><style>.a{}</style></head><body></body></html>`,
		},
		{
			name:     "empty fragment keeps document intact",
			doc:      `<html><head></head></html>`,
			fragment: ``,
			want:     `<html><head></head></html>`,
		},
		{
			name:     "document without closing head tag is unchanged",
			doc:      `<p>standalone</p>`,
			fragment: `<style></style>`,
			want:     `<p>standalone</p>`,
		},
		{
			name:     "only the first closing head tag receives the fragment",
			doc:      `<head></head><head></head>`,
			fragment: `X`,
			want:     `<head>X</head><head></head>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inject([]byte(tt.doc), []byte(tt.fragment))
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestInjectDoesNotMutateInput(t *testing.T) {
	doc := []byte(`<html><head></head></html>`)
	orig := string(doc)

	Inject(doc, []byte(`<style></style>`))
	require.Equal(t, orig, string(doc))
}
