package export

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

func WriteJSON(w io.Writer, rec *Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return errors.Wrap(err, "encode run")
	}
	return nil
}

func ReadJSON(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "decode run")
	}
	return &rec, nil
}
