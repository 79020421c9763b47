package ai

import (
	"strconv"
	"strings"

	"smartdomain/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Model answers are decoded leniently: unknown fields are skipped and values
// of an unexpected JSON type are ignored instead of failing the whole answer.

// stripFences removes a surrounding markdown code block, if any.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// str reads a string, or the textual form of a number or bool. Other types
// are skipped and reported as "".
func str(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()

		return strings.TrimSpace(s), err
	case jx.Number:
		n, err := d.Num()

		return n.String(), err
	default:
		return "", d.Skip()
	}
}

// number reads a number or a numeric string. ok is false when the value is
// missing or not numeric.
func number(d *jx.Decoder) (v float64, ok bool, err error) {
	switch d.Next() {
	case jx.Number:
		v, err = d.Float64()

		return v, err == nil, err
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, false, err
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)

		return v, perr == nil, nil
	default:
		return 0, false, d.Skip()
	}
}

// stringList reads an array of strings, dropping blanks and duplicates. A single
// string is accepted as a one element list.
func stringList(d *jx.Decoder) ([]string, error) {
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		key := strings.ToLower(s)
		if _, dup := seen[key]; s == "" || dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	switch d.Next() {
	case jx.Array:
		err := d.Arr(func(d *jx.Decoder) error {
			s, err := str(d)
			add(s)

			return err
		})

		return out, err
	case jx.String:
		s, err := str(d)
		add(s)

		return out, err
	default:
		return nil, d.Skip()
	}
}

// parseAnalysis decodes a text analysis answer.
func parseAnalysis(raw string) (*domain.AnalysisResult, error) {
	d := jx.DecodeStr(stripFences(raw))
	if d.Next() != jx.Object {
		return nil, errors.New("analysis answer is not a JSON object")
	}

	res := &domain.AnalysisResult{SemanticExtensions: map[string][]string{}}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "keywords":
			res.Keywords, err = stringList(d)
		case "semanticExtensions", "semantic_extensions":
			if d.Next() != jx.Object {
				return d.Skip()
			}
			err = d.Obj(func(d *jx.Decoder, keyword string) error {
				words, err := stringList(d)
				if err == nil && len(words) > 0 && strings.TrimSpace(keyword) != "" {
					res.SemanticExtensions[strings.TrimSpace(keyword)] = words
				}

				return err
			})
		case "domainContext", "domain_context":
			if d.Next() != jx.Object {
				return d.Skip()
			}
			err = d.Obj(func(d *jx.Decoder, field string) error {
				v, err := str(d)
				switch field {
				case "businessType", "business_type":
					res.DomainContext.BusinessType = v
				case "targetAudience", "target_audience":
					res.DomainContext.TargetAudience = v
				case "coreValue", "core_value":
					res.DomainContext.CoreValue = v
				}

				return err
			})
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode analysis answer")
	}

	ctx := &res.DomainContext
	for _, f := range []*string{&ctx.BusinessType, &ctx.TargetAudience, &ctx.CoreValue} {
		if *f == "" {
			*f = unknownContext
		}
	}

	return res, nil
}

// parseNames decodes a name generation answer. The names may be the root
// array or live under "suggestions" or "names". Entries may be plain strings.
func parseNames(raw string) ([]rawName, error) {
	d := jx.DecodeStr(stripFences(raw))

	var out []rawName
	readItems := func(d *jx.Decoder) error {
		if d.Next() != jx.Array {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			item, err := readName(d)
			if err == nil && item.Name != "" {
				out = append(out, item)
			}

			return err
		})
	}

	switch d.Next() {
	case jx.Array:
		if err := readItems(d); err != nil {
			return nil, errors.Wrap(err, "decode names answer")
		}
	case jx.Object:
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "suggestions", "names":
				return readItems(d)
			default:
				return d.Skip()
			}
		})
		if err != nil {
			return nil, errors.Wrap(err, "decode names answer")
		}
	default:
		return nil, errors.New("names answer is neither an array nor an object")
	}

	return out, nil
}

// rawName is a name as the model returned it, before normalization.
type rawName struct {
	Name          string
	Type          string
	Confidence    float64
	HasConfidence bool
	Reasoning     string
}

func readName(d *jx.Decoder) (rawName, error) {
	var n rawName
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		n.Name = strings.TrimSpace(s)

		return n, err
	case jx.Object:
		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				n.Name, err = str(d)
			case "nameType", "type", "name_type":
				n.Type, err = str(d)
			case "confidence", "score":
				n.Confidence, n.HasConfidence, err = number(d)
			case "reasoning", "explanation":
				n.Reasoning, err = str(d)
			default:
				err = d.Skip()
			}

			return err
		})

		return n, err
	default:
		return n, d.Skip()
	}
}
