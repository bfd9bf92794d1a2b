package minefield

import (
	"bytes"
	"encoding/gob"
)

// Bytes gob-encodes the field for storage.
func (m Minefield) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode restores a field encoded with Bytes.
func Decode(buf []byte) (*Minefield, error) {
	var m Minefield
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
