package tutor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"edunex/internal/util"
)

var (
	// ErrNoPayload: the completion holds no {...} substring at all.
	ErrNoPayload = errors.New("no JSON object in completion")
	// ErrBadPayload: a candidate was found but does not parse.
	ErrBadPayload = errors.New("completion JSON does not parse")
)

// ExtractJSON takes the first '{' through the last '}' of the text as the
// JSON candidate. The greedy match tolerates prose and markdown fencing
// around the object, but mis-extracts when the text carries several JSON
// blocks or literal braces inside string values.
func ExtractJSON(text string) (string, error) {
	i := strings.Index(text, "{")
	j := strings.LastIndex(text, "}")
	if i < 0 || j < i {
		return "", ErrNoPayload
	}
	return text[i : j+1], nil
}

// decodeObject runs the shared interpreter front half: fence strip, brace
// extraction, parse into a loose map for field-by-field repair.
func decodeObject(text string) (map[string]any, error) {
	cand, err := ExtractJSON(util.StripCodeFences(text))
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(cand), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return m, nil
}
