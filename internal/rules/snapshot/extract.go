package snapshot

import (
	"regexp"
	"strings"
)

// Embedding markers. Rule files written by the IDE plugin use the comment
// pair; the web client wraps tokens in the XML-style tag. The extractor
// accepts both.
const (
	CommentStartMarker = "RIVETLY_SNAPSHOT_START"
	CommentEndMarker   = "RIVETLY_SNAPSHOT_END"
)

var (
	reTagPair     = regexp.MustCompile(`(?s)<rivetly-snapshot>(.*?)</rivetly-snapshot>`)
	reCommentPair = regexp.MustCompile(`(?s)RIVETLY_SNAPSHOT_START\s*(.*?)\s*RIVETLY_SNAPSHOT_END`)
)

// Extract finds the embedded snapshot token in raw file text.
func Extract(text string) (string, bool) {
	if m := reTagPair.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reCommentPair.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
