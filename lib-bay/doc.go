// Package bay is the client library for the wash bay status API.
//
// It decodes the status list served by the API, and fetches it over HTTP.
//
//	c, err := bay.NewClient("https://example.com", "/api")
//	if err != nil {
//		return err
//	}
//	results, err := c.Fetch(ctx)
package bay
