// Package recipe turns arbitrary language-model text into a finalized,
// display-safe recipe. Parsing stages (Extract, Repair, Salvage, FromProse)
// produce drafts; Finalize coerces a draft into a domain.Recipe. No stage
// returns an error: a stage that cannot help reports false and the caller
// moves on to the next one.
package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// Decode parses a single JSON document into a domain.Value, keeping the
// key order of objects. Trailing non-whitespace is an error.
func Decode(text string) (domain.Value, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return domain.Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return domain.Value{}, err
	}
	return v, nil
}

// decodeObject parses text and accepts only a JSON object.
func decodeObject(text string) (domain.Value, bool) {
	v, err := Decode(text)
	if err != nil || v.Kind != domain.KindMapping {
		return domain.Value{}, false
	}
	return v, true
}

func decodeValue(dec *json.Decoder) (domain.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return domain.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			fields := []domain.Field{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return domain.Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return domain.Value{}, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return domain.Value{}, err
				}
				fields = append(fields, domain.Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return domain.Value{}, err
			}
			return domain.Mapping(fields...), nil
		case '[':
			items := []domain.Value{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return domain.Value{}, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return domain.Value{}, err
			}
			return domain.Sequence(items...), nil
		}
		return domain.Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return domain.String(t), nil
	case json.Number:
		return domain.Number(t.String()), nil
	case bool:
		return domain.Bool(t), nil
	case nil:
		return domain.Null(), nil
	}
	return domain.Value{}, fmt.Errorf("unexpected token %T", tok)
}
