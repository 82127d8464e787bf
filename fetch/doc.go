// SPDX-License-Identifier: EPL-2.0

// Package fetch retrieves the raw bytes of audio clips.
//
// HTTPFetcher downloads from a site, resolving references like
// "/audio/bonjour.mp3" against a base URL (https://lingopolo.org by
// default). FileFetcher reads from disk. Router picks one per reference:
//
//	f := fetch.Router{
//	    Remote: fetch.NewHTTPFetcher(""),
//	    Local:  fetch.FileFetcher{Root: "clips"},
//	}
//	data, err := f.Fetch(ctx, "/audio/bonjour.mp3")
//
// A non-200 response is ErrHTTPStatus. Nothing is retried.
package fetch
