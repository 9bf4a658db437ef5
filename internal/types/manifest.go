package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest is the parsed composer.json. The repositories block stays raw
// because a malformed block must not fail manifest parsing; it is decoded
// separately by the repository resolver.
type Manifest struct {
	Require      PairList        `json:"require"`
	RequireDev   PairList        `json:"require-dev"`
	Repositories json.RawMessage `json:"repositories"`
	Type         string          `json:"type"`
}

// Pair is a single name/constraint declaration.
type Pair struct {
	Name       string
	Constraint string
}

// PairList preserves the declaration order of a JSON object's keys.
// encoding/json maps would lose it, and downstream consumers rely on
// dependencies appearing in manifest order.
type PairList []Pair

func (p *PairList) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	delim, ok := token.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", token)
	}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyToken)
		}
		var value string
		if err := decoder.Decode(&value); err != nil {
			return err
		}
		*p = append(*p, Pair{Name: key, Constraint: value})
	}
	_, err = decoder.Token()
	return err
}

func (p PairList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Constraint)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the constraint for the first pair with the given name.
func (p PairList) Get(name string) (string, bool) {
	for _, pair := range p {
		if pair.Name == name {
			return pair.Constraint, true
		}
	}
	return "", false
}
