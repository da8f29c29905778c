package transport

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// Response carries the status code and raw body of a controller reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the response body into target.
func (r *Response) JSON(target any) error {
	if len(r.Body) == 0 {
		return errors.NewParseError("json", "response body", "empty body", nil)
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return errors.WrapParse("json", "response body", err)
	}
	return nil
}

// Description extracts the controller's human-readable error description
// from a reply body. Error replies normally carry a top-level description
// field; anything else degrades to the trimmed raw body.
func (r *Response) Description() string {
	if v := gjson.GetBytes(r.Body, "description"); v.Exists() {
		return v.String()
	}
	return strings.TrimSpace(string(r.Body))
}
