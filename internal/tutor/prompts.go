package tutor

import (
	"fmt"
	"math"
	"strings"
)

// Prompt builders. Pure string construction: every behavioral rule (step
// limits, rubrics, output shape) rides inside the prompt text because the
// completion backend has no structured instruction channel. Caller input is
// interpolated verbatim; nothing here defends against prompt injection.

// BuildHintPrompt selects one of three fixed templates by step: 0 and 1 are
// graded hints that must not reveal the answer, anything >= 2 asks for the
// full structured explanation.
func BuildHintPrompt(question string, step int) string {
	switch {
	case step <= 0:
		return fmt.Sprintf(`You are a helpful AI tutor. A student asked: "%s"

Provide ONLY the FIRST HINT to guide them toward understanding this concept.
- Don't give the complete answer
- Focus on one key aspect or starting point
- Keep it short and encouraging (2-3 sentences max)
- Help them think about the concept

Example: "Think about how parent and child classes relate in programming. What properties or methods might they share?"`, question)

	case step == 1:
		return fmt.Sprintf(`You are a helpful AI tutor. A student asked: "%s"

They already got the first hint. Now provide the SECOND HINT that goes deeper.
- Give more specific guidance but DON'T reveal the full answer yet
- Build on the first hint
- Keep it short (2-3 sentences)
- Guide them closer to the answer

Example: "Consider the relationship between a general 'Vehicle' class and a specific 'Car' class. The Car inherits properties from Vehicle."`, question)

	default:
		return fmt.Sprintf(`You are a helpful AI tutor. A student asked: "%s"

They've received 2 hints. Now provide a COMPLETE, CLEAR EXPLANATION.

Structure your answer:
1. **Definition**: Clear explanation of the concept
2. **Key Points**: 3-4 important aspects
3. **Example**: Simple, practical example
4. **Summary**: Brief takeaway

Be thorough, clear, and educational. Use simple language.`, question)
	}
}

// BuildConceptPrompt embeds one worked example to anchor the output format,
// plus the cardinality and naming rules for the map.
func BuildConceptPrompt(question string) string {
	return fmt.Sprintf(`You are an educational AI that creates concept maps for learning.

Student's Question: "%s"

Your task: Create a concept map that explains this topic and related concepts.

Return ONLY valid JSON (no markdown, no code blocks):
{
  "concepts": [
    {
      "id": "main-concept",
      "label": "Main Topic",
      "level": 0,
      "description": "Central concept being asked about"
    },
    {
      "id": "sub-concept-1",
      "label": "Subtopic 1",
      "level": 1,
      "description": "Related concept"
    },
    {
      "id": "sub-concept-2",
      "label": "Subtopic 2",
      "level": 1,
      "description": "Another related concept"
    },
    {
      "id": "foundation-1",
      "label": "Prerequisite",
      "level": 2,
      "description": "Foundation concept needed"
    }
  ],
  "relations": [
    { "from": "main-concept", "to": "sub-concept-1", "type": "relates" },
    { "from": "main-concept", "to": "sub-concept-2", "type": "relates" },
    { "from": "sub-concept-1", "to": "foundation-1", "type": "requires" }
  ]
}

EXAMPLE - If question is "What is inheritance?":
{
  "concepts": [
    {
      "id": "inheritance",
      "label": "Inheritance",
      "level": 0,
      "description": "Mechanism to create new classes from existing ones"
    },
    {
      "id": "parent-class",
      "label": "Parent Class",
      "level": 1,
      "description": "Base class that is inherited from"
    },
    {
      "id": "child-class",
      "label": "Child Class",
      "level": 1,
      "description": "Derived class that inherits properties"
    },
    {
      "id": "code-reuse",
      "label": "Code Reusability",
      "level": 1,
      "description": "Benefit of using inheritance"
    },
    {
      "id": "oop",
      "label": "OOP Concepts",
      "level": 2,
      "description": "Object-oriented programming fundamentals"
    },
    {
      "id": "classes",
      "label": "Classes & Objects",
      "level": 2,
      "description": "Building blocks of OOP"
    }
  ],
  "relations": [
    { "from": "inheritance", "to": "parent-class", "type": "relates" },
    { "from": "inheritance", "to": "child-class", "type": "relates" },
    { "from": "inheritance", "to": "code-reuse", "type": "relates" },
    { "from": "parent-class", "to": "oop", "type": "requires" },
    { "from": "child-class", "to": "classes", "type": "requires" }
  ]
}

RULES:
- Create 5-8 concepts
- Level 0 = main topic being asked about
- Level 1 = subtopics and related concepts (3-5 concepts)
- Level 2 = prerequisites and foundations (2-3 concepts)
- Use kebab-case for IDs
- Keep labels SHORT (2-4 words max)
- Use "relates" for related concepts, "requires" for prerequisites
- Focus on explaining the CONCEPT, not solving a problem`, question)
}

// BuildVerificationPrompt encodes the 4x25-point rubric and the 70-point
// pass threshold as prose.
func BuildVerificationPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an educational AI assistant verifying student answers.

Question: %s

Student's Answer: %s

Evaluate and respond ONLY with valid JSON:
{
  "verified": true,
  "message": "Overall feedback",
  "score": 85,
  "issues": ["issue 1"],
  "suggestions": ["suggestion 1"],
  "missingPoints": ["missing point 1"]
}

Criteria (100 points total):
- Accuracy (25 points): Factually correct?
- Completeness (25 points): Fully answers question?
- Clarity (25 points): Well-explained?
- Educational Value (25 points): Helps learning?

Minimum score to verify: 70/100`, question, answer)
}

// BuildTopicPrompt lists the questions with 1-based indices; the grouping
// rule (4+ members) travels in the prompt, the interpreter does not
// re-filter.
func BuildTopicPrompt(questions []TopicQuestion) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
	}
	return fmt.Sprintf(`Analyze these student questions and group by topic:

%s
Return ONLY valid JSON:
{
  "topics": [
    { "name": "Topic name", "questions": [1, 2, 3, 4] }
  ]
}

Only include topics that have 4+ questions. "questions" holds the question numbers from the list above.`, b.String())
}

// BuildFocusPrompt grounds the commentary in the locally computed score and
// a compact history summary so the model doesn't invent its own numbers.
func BuildFocusPrompt(session FocusSession, score int, history []FocusHistoryEntry) string {
	historyText := "No previous sessions"
	if len(history) > 0 {
		parts := make([]string, len(history))
		for i, h := range history {
			parts[i] = fmt.Sprintf("Session %d: %d", i+1, h.Score)
		}
		historyText = strings.Join(parts, ", ")
	}

	return fmt.Sprintf(`Analyze this focus session (%dmin, %d distractions, score: %d/100).

Previous: %s

Return JSON with: score, grade, strengths[], weaknesses[], tips[], pattern, encouragement`,
		int(math.Round(session.Duration/60)), session.Distractions, score, historyText)
}
