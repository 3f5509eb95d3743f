package tutor

import "encoding/json"

// Concept is one node of a concept map. Level 0 is the main topic; higher
// levels are conceptually further away (1 = subtopics, 2 = prerequisites).
type Concept struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

type Relation struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"` // "relates" | "requires" | "leads-to"
}

type ConceptMap struct {
	Concepts  []Concept  `json:"concepts"`
	Relations []Relation `json:"relations"`
}

// Verification is the rubric-scored review of a peer answer. verified should
// track score >= 70 per the prompt's policy; the value is taken from the
// model as-is and not recomputed here.
type Verification struct {
	Verified      bool     `json:"verified"`
	Message       string   `json:"message"`
	Score         int      `json:"score"`
	Issues        []string `json:"issues"`
	Suggestions   []string `json:"suggestions"`
	MissingPoints []string `json:"missingPoints"`
}

type Topic struct {
	Name      string `json:"name"`
	Questions []int  `json:"questions"` // 1-based indices into the submitted list
}

type TopicReport struct {
	Topics []Topic `json:"topics"`
}

// TopicQuestion tolerates both the bare-string and the {question: "..."}
// forms the frontend has sent over time.
type TopicQuestion struct {
	Question string `json:"question"`
}

func (q *TopicQuestion) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		q.Question = s
		return nil
	}
	type plain TopicQuestion
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*q = TopicQuestion(p)
	return nil
}

// FocusSession is the caller-reported outcome of one timer run. Durations are
// in seconds.
type FocusSession struct {
	Duration     float64 `json:"duration"`
	Distractions int     `json:"distractions"`
	TimeAway     float64 `json:"timeAway"`
	Completed    bool    `json:"completed"`
}

type FocusHistoryEntry struct {
	Score int `json:"score"`
}

type FocusReport struct {
	Score         int      `json:"score"`
	Grade         string   `json:"grade"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Tips          []string `json:"tips"`
	Pattern       string   `json:"pattern"`
	Encouragement string   `json:"encouragement"`
}
