package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidRecommendations is returned when a payload does not match the
// recommendations schema.
var ErrInvalidRecommendations = errors.New("invalid recommendations")

const recommendationsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["professions"],
  "properties": {
    "professions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "requiredSkills", "careerPath", "salaryRange", "marketStats"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "requiredSkills": {"type": "array", "items": {"type": "string"}},
          "careerPath": {"type": "array", "items": {"type": "string"}},
          "salaryRange": {"type": "string"},
          "marketStats": {"type": "string"},
          "successStory": {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationsSchema))
	})
	return schema, schemaErr
}

// jsonBlock matches from the first '{' to the last '}'.
var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

// Validate checks raw JSON against the recommendations schema.
func Validate(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecommendations, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecommendations, strings.Join(msgs, "; "))
}

// Decode validates and unmarshals a JSON recommendations envelope.
func Decode(data []byte) (Recommendations, error) {
	if err := Validate(data); err != nil {
		return Recommendations{}, err
	}
	var r Recommendations
	if err := json.Unmarshal(data, &r); err != nil {
		return Recommendations{}, fmt.Errorf("decoding recommendations: %w", err)
	}
	return r, nil
}

// ParseResponse extracts recommendations from free-form analysis output. It
// tries the whole text as JSON, then the outermost {...} block, and otherwise
// returns Placeholder. It never fails.
func ParseResponse(text string) Recommendations {
	if r, err := Decode([]byte(text)); err == nil {
		return r
	}
	if block := jsonBlock.FindString(text); block != "" {
		if r, err := Decode([]byte(block)); err == nil {
			return r
		}
	}
	return Placeholder()
}

// Placeholder is the single record shown when a response cannot be parsed.
func Placeholder() Recommendations {
	return Recommendations{
		Professions: []Profession{
			{
				Name:           "Career Option",
				RequiredSkills: []string{"Based on provided information"},
				CareerPath:     []string{"Please try again with more specific information"},
				SalaryRange:    "Varies",
				MarketStats:    "Data unavailable",
				SuccessStory:   "Please try again",
			},
		},
	}
}
