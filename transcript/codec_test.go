package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_NoLeadingMarker(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"plain text", []string{"just", "some text"}, "just\nsome text"},
		{"empty document", nil, ""},
		{"single empty line", []string{""}, ""},
		{"marker not first", []string{"preamble", UserMarker, "hi"}, "preamble\n" + UserMarker + "\nhi"},
		{"almost a marker", []string{"# ** ------- User ------- **", "hi"}, "# ** ------- User ------- **\nhi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending, history := Decode(tt.lines)
			assert.Equal(t, tt.want, pending)
			assert.Empty(t, history)
		})
	}
}

func TestDecode_PendingPromptOnly(t *testing.T) {
	pending, history := Decode([]string{UserMarker, "", "hello"})
	assert.Equal(t, "hello\n", pending)
	assert.Empty(t, history)
}

func TestDecode_BareMarker(t *testing.T) {
	pending, history := Decode([]string{UserMarker})
	assert.Empty(t, pending)
	assert.Empty(t, history)
}

func TestDecode_CompletedExchange(t *testing.T) {
	pending, history := Decode([]string{
		UserMarker, "", "hi",
		AssistantMarker, "", "there",
		UserMarker, "", "",
	})

	assert.Empty(t, pending)
	require.Len(t, history, 2)
	assert.Equal(t, UserTurn("hi\n"), history[0])
	assert.Equal(t, AssistantTurn("there\n"), history[1])
}

func TestDecode_TrailingAssistantSegment(t *testing.T) {
	// A document cut off mid-response ends inside the assistant segment;
	// that segment still reads back as an assistant turn.
	pending, history := Decode([]string{
		UserMarker, "", "question",
		AssistantMarker, "", "partial answer",
	})

	assert.Empty(t, pending)
	require.Len(t, history, 2)
	assert.Equal(t, UserTurn("question\n"), history[0])
	assert.Equal(t, AssistantTurn("partial answer\n"), history[1])
}

func TestDecode_EmptyTrailingAssistantSegment(t *testing.T) {
	pending, history := Decode([]string{UserMarker, "", "question", AssistantMarker})

	assert.Empty(t, pending)
	require.Len(t, history, 2)
	assert.Equal(t, AssistantTurn(""), history[1])
}

func TestDecode_ConsecutiveMarkers(t *testing.T) {
	pending, history := Decode([]string{
		UserMarker, "",
		AssistantMarker, "",
		UserMarker, "", "hi",
	})

	assert.Equal(t, "hi\n", pending)
	assert.Empty(t, history, "empty segments are never promoted to turns")
}

func TestDecode_InteriorBlankLines(t *testing.T) {
	pending, history := Decode([]string{
		UserMarker, "",
		"first paragraph", "", "second paragraph",
	})

	assert.Equal(t, "first paragraph\n\nsecond paragraph\n", pending)
	assert.Empty(t, history)
}

func TestDecode_ArbitraryRoleSequences(t *testing.T) {
	// Hand-edited documents may repeat a role; the codec does not enforce
	// alternation.
	pending, history := Decode([]string{
		UserMarker, "", "one",
		UserMarker, "", "two",
		AssistantMarker, "", "three",
		UserMarker, "",
	})

	assert.Empty(t, pending)
	require.Len(t, history, 3)
	assert.Equal(t, []Turn{UserTurn("one\n"), UserTurn("two\n"), AssistantTurn("three\n")}, history)
}

func TestDecode_RoundTrip(t *testing.T) {
	turns := []Turn{
		UserTurn("explain monads"),
		AssistantTurn("a monad is a monoid\nin the category of endofunctors"),
		UserTurn("shorter please"),
		AssistantTurn("burrito"),
	}

	// Reassemble the document the way the controller writes it: seed, the
	// first prompt, then header+text per turn, then the reopening header.
	content := Seed + turns[0].Text
	for _, turn := range turns[1:] {
		content += Header(turn.Role) + turn.Text
	}
	content += UserHeader

	pending, history := Decode(strings.Split(content, "\n"))
	assert.Empty(t, pending)
	require.Len(t, history, len(turns))

	// Roles and text survive; the blank padding around each header is
	// absorbed into the preceding turn as trailing newlines.
	for i, turn := range turns {
		assert.Equal(t, turn.Role, history[i].Role)
		assert.Equal(t, turn.Text, strings.TrimRight(history[i].Text, "\n"))
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, AssistantHeader, Header(Assistant))
	assert.Equal(t, UserHeader, Header(User))
	assert.Contains(t, AssistantHeader, AssistantMarker)
	assert.Contains(t, UserHeader, UserMarker)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "assistant", Assistant.String())
	assert.Equal(t, "unknown", Role(9).String())
}
