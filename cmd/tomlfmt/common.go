package main

import (
	"io"

	"github.com/maurice/tomlmodel"
)

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// parseOrLog parses data, logging the failing position at debug level
// before surfacing the error to the caller.
func parseOrLog(data []byte) (*toml.Document, error) {
	doc, err := toml.Parse(data)
	if err != nil {
		log.WithError(err).Debug("parse failed")
		return nil, err
	}
	return doc, nil
}
