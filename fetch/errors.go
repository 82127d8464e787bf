package fetch

import "errors"

var (
	ErrEmptyReference = errors.New("empty clip reference")
	ErrHTTPStatus     = errors.New("unexpected HTTP status")
	ErrNoFetcher      = errors.New("no fetcher for reference")
)
