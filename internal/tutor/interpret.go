package tutor

// Response interpreters. Each takes a raw completion and returns a fully
// populated result; on failure the result is already the task's neutral
// fallback, and the error (ErrNoPayload / ErrBadPayload) only tells the
// dispatch layer which failure it was. Nothing past this boundary throws.

func EmptyConceptMap() ConceptMap {
	return ConceptMap{Concepts: []Concept{}, Relations: []Relation{}}
}

// InterpretConceptMap repairs the parsed object into a ConceptMap. Relations
// whose endpoints don't name a known concept id are dropped rather than kept
// dangling.
func InterpretConceptMap(raw string) (ConceptMap, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return EmptyConceptMap(), err
	}

	cm := EmptyConceptMap()
	ids := make(map[string]bool)

	if arr, ok := m["concepts"].([]any); ok {
		for _, v := range arr {
			cv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c := Concept{
				ID:          strField(cv, "id", ""),
				Label:       strField(cv, "label", ""),
				Level:       intField(cv, "level", 0),
				Description: strField(cv, "description", ""),
			}
			if c.ID == "" {
				continue
			}
			cm.Concepts = append(cm.Concepts, c)
			ids[c.ID] = true
		}
	}

	if arr, ok := m["relations"].([]any); ok {
		for _, v := range arr {
			rv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			r := Relation{
				From: strField(rv, "from", ""),
				To:   strField(rv, "to", ""),
				Type: strField(rv, "type", "relates"),
			}
			if !ids[r.From] || !ids[r.To] {
				continue
			}
			cm.Relations = append(cm.Relations, r)
		}
	}

	return cm, nil
}

func FallbackVerification(message string) Verification {
	return Verification{
		Verified:      false,
		Message:       message,
		Score:         0,
		Issues:        []string{},
		Suggestions:   []string{},
		MissingPoints: []string{},
	}
}

func InterpretVerification(raw string) (Verification, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return FallbackVerification(""), err
	}
	return Verification{
		Verified:      boolField(m, "verified"),
		Message:       strField(m, "message", "Answer processed."),
		Score:         intField(m, "score", 0),
		Issues:        strListField(m, "issues"),
		Suggestions:   strListField(m, "suggestions"),
		MissingPoints: strListField(m, "missingPoints"),
	}, nil
}

func EmptyTopicReport() TopicReport {
	return TopicReport{Topics: []Topic{}}
}

func InterpretTopics(raw string) (TopicReport, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return EmptyTopicReport(), err
	}
	out := EmptyTopicReport()
	if arr, ok := m["topics"].([]any); ok {
		for _, v := range arr {
			tv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			t := Topic{
				Name:      strField(tv, "name", ""),
				Questions: intListField(tv, "questions"),
			}
			if t.Name == "" {
				continue
			}
			out.Topics = append(out.Topics, t)
		}
	}
	return out, nil
}

// InterpretFocus repairs the commentary fields. The model's score echo is
// kept for display, defaulting to the locally computed one when absent; the
// local number stays authoritative either way (the caller re-attaches it as
// rawScore).
func InterpretFocus(raw string, localScore int) (FocusReport, error) {
	fallback := FocusReport{
		Score:      localScore,
		Strengths:  []string{},
		Weaknesses: []string{},
		Tips:       []string{},
	}
	m, err := decodeObject(raw)
	if err != nil {
		return fallback, err
	}
	return FocusReport{
		Score:         intField(m, "score", localScore),
		Grade:         strField(m, "grade", ""),
		Strengths:     strListField(m, "strengths"),
		Weaknesses:    strListField(m, "weaknesses"),
		Tips:          strListField(m, "tips"),
		Pattern:       strField(m, "pattern", ""),
		Encouragement: strField(m, "encouragement", ""),
	}, nil
}
