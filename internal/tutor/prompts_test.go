package tutor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHintPromptDistinctTemplates(t *testing.T) {
	q := "What is recursion?"
	p0 := BuildHintPrompt(q, 0)
	p1 := BuildHintPrompt(q, 1)
	p2 := BuildHintPrompt(q, 2)

	assert.NotEqual(t, p0, p1)
	assert.NotEqual(t, p1, p2)
	assert.NotEqual(t, p0, p2)

	for _, p := range []string{p0, p1, p2} {
		assert.Contains(t, p, q)
	}

	assert.Contains(t, p0, "FIRST HINT")
	assert.Contains(t, p1, "SECOND HINT")
	assert.Contains(t, p2, "COMPLETE, CLEAR EXPLANATION")
}

func TestBuildHintPromptIdempotentBeyondThreshold(t *testing.T) {
	q := "What is recursion?"
	assert.Equal(t, BuildHintPrompt(q, 2), BuildHintPrompt(q, 7))
	// negative steps behave like the first hint
	assert.Equal(t, BuildHintPrompt(q, 0), BuildHintPrompt(q, -1))
}

func TestBuildHintPromptFinalStructure(t *testing.T) {
	p := BuildHintPrompt("What is inheritance?", 2)
	for _, section := range []string{"Definition", "Key Points", "Example", "Summary"} {
		assert.Contains(t, p, section)
	}
}

func TestBuildConceptPromptCarriesFormatAnchor(t *testing.T) {
	p := BuildConceptPrompt("What is inheritance?")
	assert.Contains(t, p, `"What is inheritance?"`)
	assert.Contains(t, p, "Return ONLY valid JSON")
	assert.Contains(t, p, "kebab-case")
	assert.Contains(t, p, "5-8 concepts")

	// the embedded worked example must itself be valid JSON shape cues
	assert.Contains(t, p, `"type": "requires"`)
}

func TestBuildVerificationPromptRubric(t *testing.T) {
	p := BuildVerificationPrompt("What is a stack?", "LIFO structure")
	assert.Contains(t, p, "What is a stack?")
	assert.Contains(t, p, "LIFO structure")
	assert.Contains(t, p, "Accuracy (25 points)")
	assert.Contains(t, p, "Minimum score to verify: 70/100")
}

func TestBuildTopicPromptIndexesFromOne(t *testing.T) {
	p := BuildTopicPrompt([]TopicQuestion{
		{Question: "What is recursion?"},
		{Question: "Explain pointers"},
	})
	assert.Contains(t, p, "1. What is recursion?")
	assert.Contains(t, p, "2. Explain pointers")
	assert.Contains(t, p, "4+")
}

func TestTopicQuestionAcceptsBothShapes(t *testing.T) {
	var qs []TopicQuestion
	err := json.Unmarshal([]byte(`["plain string", {"question":"object form"}]`), &qs)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "plain string", qs[0].Question)
	assert.Equal(t, "object form", qs[1].Question)
}

func TestBuildFocusPromptEmbedsLocalNumbers(t *testing.T) {
	s := FocusSession{Duration: 1500, Distractions: 3, TimeAway: 120, Completed: true}
	p := BuildFocusPrompt(s, 73, nil)
	assert.Contains(t, p, "25min")
	assert.Contains(t, p, "3 distractions")
	assert.Contains(t, p, "score: 73/100")
	assert.Contains(t, p, "No previous sessions")
}

func TestBuildFocusPromptHistorySummary(t *testing.T) {
	s := FocusSession{Duration: 600, Completed: true}
	p := BuildFocusPrompt(s, 100, []FocusHistoryEntry{{Score: 85}, {Score: 90}})
	assert.Contains(t, p, "Session 1: 85, Session 2: 90")
	assert.False(t, strings.Contains(p, "No previous sessions"))
}
