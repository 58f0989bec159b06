package merge

import (
	"bytes"
)

const (
	markerCurrent = "<<<<<<< HEAD\n"
	markerSplit   = "=======\n"
	markerGiven   = ">>>>>>>"
)

// ConflictText joins both versions of a file between conflict markers.
// A side that does not end in a newline gets one so the markers stay on
// their own lines. An absent side contributes nothing.
func ConflictText(current, given []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(markerCurrent)
	writeSide(&buf, current)
	buf.WriteString(markerSplit)
	writeSide(&buf, given)
	buf.WriteString(markerGiven)
	return buf.Bytes()
}

func writeSide(buf *bytes.Buffer, content []byte) {
	buf.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
