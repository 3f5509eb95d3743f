package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretVerificationFillsDefaults(t *testing.T) {
	v, err := InterpretVerification(`Some prose {"verified":true,"score":85} more prose`)
	require.NoError(t, err)

	assert.True(t, v.Verified)
	assert.Equal(t, 85, v.Score)
	assert.Equal(t, "Answer processed.", v.Message)
	assert.Equal(t, []string{}, v.Issues)
	assert.Equal(t, []string{}, v.Suggestions)
	assert.Equal(t, []string{}, v.MissingPoints)
}

func TestInterpretVerificationWrongTypedLists(t *testing.T) {
	v, err := InterpretVerification(`{"verified":false,"score":40,"issues":"not-a-list","suggestions":[{"x":1},"keep me"]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{}, v.Issues)
	assert.Equal(t, []string{"keep me"}, v.Suggestions)
}

func TestInterpretVerificationFallbacks(t *testing.T) {
	v, err := InterpretVerification("no json here")
	assert.ErrorIs(t, err, ErrNoPayload)
	assert.False(t, v.Verified)
	assert.Equal(t, 0, v.Score)
	assert.NotNil(t, v.Issues)

	v, err = InterpretVerification(`{"verified": broken}`)
	assert.ErrorIs(t, err, ErrBadPayload)
	assert.False(t, v.Verified)
}

func TestInterpretConceptMapWrongTypedConcepts(t *testing.T) {
	cm, err := InterpretConceptMap(`{"concepts":"not-an-array","relations":[]}`)
	require.NoError(t, err)
	assert.Equal(t, []Concept{}, cm.Concepts)
	assert.Equal(t, []Relation{}, cm.Relations)
}

func TestInterpretConceptMapDropsDanglingRelations(t *testing.T) {
	raw := `{
		"concepts": [
			{"id":"inheritance","label":"Inheritance","level":0,"description":"main"},
			{"id":"parent-class","label":"Parent Class","level":1,"description":"base"}
		],
		"relations": [
			{"from":"inheritance","to":"parent-class","type":"relates"},
			{"from":"inheritance","to":"ghost","type":"requires"}
		]
	}`
	cm, err := InterpretConceptMap(raw)
	require.NoError(t, err)
	require.Len(t, cm.Relations, 1)
	assert.Equal(t, "parent-class", cm.Relations[0].To)
}

func TestInterpretConceptMapSkipsConceptsWithoutID(t *testing.T) {
	raw := `{"concepts":[{"label":"anonymous"},{"id":"oop","label":"OOP","level":2}],"relations":[]}`
	cm, err := InterpretConceptMap(raw)
	require.NoError(t, err)
	require.Len(t, cm.Concepts, 1)
	assert.Equal(t, "oop", cm.Concepts[0].ID)
	assert.Equal(t, 2, cm.Concepts[0].Level)
}

func TestInterpretConceptMapRelationTypeDefault(t *testing.T) {
	raw := `{"concepts":[{"id":"a"},{"id":"b"}],"relations":[{"from":"a","to":"b"}]}`
	cm, err := InterpretConceptMap(raw)
	require.NoError(t, err)
	require.Len(t, cm.Relations, 1)
	assert.Equal(t, "relates", cm.Relations[0].Type)
}

func TestInterpretTopics(t *testing.T) {
	raw := `{"topics":[
		{"name":"Recursion","questions":[1,2,5,7]},
		{"questions":[3,4]},
		"junk"
	]}`
	report, err := InterpretTopics(raw)
	require.NoError(t, err)
	require.Len(t, report.Topics, 1)
	assert.Equal(t, "Recursion", report.Topics[0].Name)
	assert.Equal(t, []int{1, 2, 5, 7}, report.Topics[0].Questions)
}

func TestInterpretTopicsFallback(t *testing.T) {
	report, err := InterpretTopics("nothing structured")
	assert.ErrorIs(t, err, ErrNoPayload)
	assert.Equal(t, []Topic{}, report.Topics)
}

func TestInterpretFocusDefaultsScoreToLocal(t *testing.T) {
	rep, err := InterpretFocus(`{"grade":"B","tips":["shorter sessions"]}`, 72)
	require.NoError(t, err)
	assert.Equal(t, 72, rep.Score)
	assert.Equal(t, "B", rep.Grade)
	assert.Equal(t, []string{"shorter sessions"}, rep.Tips)
	assert.Equal(t, []string{}, rep.Strengths)
}

func TestInterpretFocusFallbackKeepsLocalScore(t *testing.T) {
	rep, err := InterpretFocus("no braces at all", 55)
	assert.ErrorIs(t, err, ErrNoPayload)
	assert.Equal(t, 55, rep.Score)
	assert.NotNil(t, rep.Tips)
}
