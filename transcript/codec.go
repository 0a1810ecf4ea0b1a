package transcript

import "strings"

// Marker literals are part of the on-disk document format and must stay
// bit-exact: documents written by older builds are parsed by newer ones.
const (
	UserMarker      = "# ** ------- User -------- **"
	AssistantMarker = "# ** ----- Assistant ----- **"
)

const (
	// Seed is the content of a freshly created prompt buffer: a user marker
	// opening the first segment, followed by a blank line for the prompt.
	Seed = UserMarker + "\n\n"

	// UserHeader reopens the document for the next user turn after an
	// assistant response has finished streaming.
	UserHeader = "\n\n" + UserMarker + "\n\n"

	// AssistantHeader opens the segment that streamed assistant text is
	// appended into.
	AssistantHeader = "\n\n" + AssistantMarker + "\n\n"
)

// Header returns the append preamble for the given role.
func Header(role Role) string {
	if role == Assistant {
		return AssistantHeader
	}
	return UserHeader
}

// Decode scans document lines and recovers the conversation they contain:
// the ordered completed turns, plus the trailing pending prompt when the
// last open segment belongs to the user.
//
// A document that does not begin with the user marker predates or violates
// the marker convention; the whole input is returned as one opaque pending
// prompt with no history. Within a well-formed document, a marker line closes
// the accumulating segment into a turn under the role that was current, and
// switches the current role. Blank lines ahead of any content are skipped so
// the padding after a marker never becomes part of a turn; empty segments
// (consecutive markers) are never promoted to turns. If the document ends
// inside an assistant segment, that segment becomes a final assistant turn
// even when empty, which is how a response interrupted mid-stream reads back.
func Decode(lines []string) (pending string, history []Turn) {
	if len(lines) == 0 || lines[0] != UserMarker {
		return strings.Join(lines, "\n"), nil
	}

	role := User
	var partial strings.Builder

	flush := func() {
		if partial.Len() > 0 {
			history = append(history, Turn{Role: role, Text: partial.String()})
			partial.Reset()
		}
	}

	for _, line := range lines {
		switch line {
		case "":
			if partial.Len() == 0 {
				continue
			}
			partial.WriteByte('\n')
		case AssistantMarker:
			flush()
			role = Assistant
		case UserMarker:
			flush()
			role = User
		default:
			partial.WriteString(line)
			partial.WriteByte('\n')
		}
	}

	if role == User {
		return partial.String(), history
	}
	history = append(history, Turn{Role: Assistant, Text: partial.String()})
	return "", history
}
