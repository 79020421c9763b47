package v1handler

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"smartdomain/pkg/serrors"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

const (
	maxBodyBytes = 1 << 20
	// rootField is how gojsonschema names the document itself.
	rootField = "(root)"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	generateSchema       = mustSchema("generate.json")        //nolint: gochecknoglobals
	favoriteCreateSchema = mustSchema("favorite_create.json") //nolint: gochecknoglobals
	favoriteUpdateSchema = mustSchema("favorite_update.json") //nolint: gochecknoglobals
	historyCreateSchema  = mustSchema("history_create.json")  //nolint: gochecknoglobals
	keyCreateSchema      = mustSchema("key_create.json")      //nolint: gochecknoglobals
)

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("could not read schema %s: %v", name, err))
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("could not compile schema %s: %v", name, err))
	}

	return schema
}

// decodeBody validates the request body against schema and decodes it into dst.
// Violations are reported as BAD_REQUEST with one FieldError per problem.
func decodeBody(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) == 0 || !jx.Valid(body) {
		return serrors.Invalid("request body must be a JSON object")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not validate request body")
	}
	if !result.Valid() {
		fields := make([]serrors.FieldError, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			fields = append(fields, serrors.FieldError{Field: fieldName(e), Message: e.Description()})
		}

		return serrors.Invalid("validation failed", fields...)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}

// fieldName names the offending property. Missing properties are reported on
// their parent by gojsonschema.
func fieldName(e gojsonschema.ResultError) string {
	field := e.Field()
	if prop, ok := e.Details()["property"].(string); ok && e.Type() == "required" {
		if field == rootField || field == "" {
			return prop
		}

		return field + "." + prop
	}
	if field == rootField {
		return ""
	}

	return field
}

// queryInt parses an optional positive integer query parameter.
func queryInt(r *http.Request, name string) (int, *serrors.FieldError) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, &serrors.FieldError{Field: name, Message: "must be a positive integer"}
	}

	return n, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, *serrors.FieldError) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, &serrors.FieldError{Field: name, Message: "must be true or false"}
	}

	return &b, nil
}

// queryIDs parses a comma separated list of UUIDs.
func queryIDs(r *http.Request, name string) ([]uuid.UUID, *serrors.FieldError) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	parts := strings.Split(v, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, &serrors.FieldError{Field: name, Message: fmt.Sprintf("%q is not a valid id", p)}
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// pathID parses a UUID path parameter.
func pathID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.Invalid("invalid id", serrors.FieldError{Field: "id", Message: "must be a UUID"})
	}

	return id, nil
}

// collect turns field errors into a single BAD_REQUEST, or nil when there are none.
func collect(errs ...*serrors.FieldError) error {
	var fields []serrors.FieldError
	for _, e := range errs {
		if e != nil {
			fields = append(fields, *e)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return serrors.Invalid("invalid query parameters", fields...)
}
