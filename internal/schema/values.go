package schema

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Values is the normalized key/value form of a submission. Every handler
// builds one of these before any validation runs, so checkbox and
// empty-string normalization live in exactly one place.
type Values map[string]string

func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// ValuesFromRequest flattens either a JSON body or a (multipart) form-encoded
// body into Values. JSON scalars are stringified; nulls are dropped so they
// read as absent fields.
func ValuesFromRequest(c *gin.Context) (Values, error) {
	ct := c.ContentType()

	if strings.HasPrefix(ct, "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
			return nil, err
		}
		vals := make(Values, len(raw))
		for k, val := range raw {
			switch t := val.(type) {
			case string:
				vals[k] = t
			case float64:
				vals[k] = strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				vals[k] = strconv.FormatBool(t)
			case nil:
				// absent
			}
		}
		return vals, nil
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && err != http.ErrNotMultipart {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
	}

	vals := make(Values)
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			vals[k] = vs[0]
		}
	}
	return vals, nil
}
