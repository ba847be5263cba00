package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrUnreadable is returned when a persisted blob cannot be mapped to any
// known record shape. The caller decides whether to reset the storage; the
// decoders themselves never guess beyond the documented legacy mappings.
var ErrUnreadable = errors.New("stored data is unreadable")

// FlexNumber decodes a JSON number that older app builds sometimes stored
// as text ("9982.23", "18%"). Marshals back as a plain number.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexNumber(v)
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// FlexString decodes a JSON string that was sometimes stored as a number
// (the advance field). Marshals back as a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var v json.Number
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexString(v.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// StringList decodes the free-text sections that were once stored as a
// single newline-joined string. A bare string splits on newlines with
// blank lines dropped; a JSON list passes through.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		var out []string
		for _, line := range strings.Split(s, "\n") {
			if strings.TrimSpace(line) != "" {
				out = append(out, line)
			}
		}
		*l = out
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// DecodeSavedRecords maps a raw storage blob to the current record list
// shape. Decode order: current list shape, then the legacy single-object
// shape, otherwise ErrUnreadable. Missing computed fields come out as
// zeros; callers reprice before use.
func DecodeSavedRecords(raw []byte) ([]SavedRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []SavedRecord{}, nil
	}

	var records []SavedRecord
	if err := json.Unmarshal(trimmed, &records); err == nil {
		return records, nil
	}

	// Legacy builds stored one bare record object instead of a list.
	var single SavedRecord
	if err := json.Unmarshal(trimmed, &single); err == nil {
		if single.ClientName == "" {
			single.ClientName = "Unnamed"
		}
		if single.Advance == "" {
			single.Advance = "0"
		}
		return []SavedRecord{single}, nil
	}

	return nil, ErrUnreadable
}

// DecodeSavedQuotations maps a raw storage blob to the current quotation
// list shape. String-vs-list and percent-as-text drift is absorbed by the
// field types; anything else is ErrUnreadable.
func DecodeSavedQuotations(raw []byte) ([]SavedQuotation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []SavedQuotation{}, nil
	}
	var quotations []SavedQuotation
	if err := json.Unmarshal(trimmed, &quotations); err != nil {
		return nil, ErrUnreadable
	}
	return quotations, nil
}
