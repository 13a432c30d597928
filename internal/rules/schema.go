package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seolint/seolint/internal/extract"
	"github.com/seolint/seolint/internal/report"
)

// schemaRequiredProps maps each recognized schema type to the properties it
// must declare. Unknown types get no required-property checks; they are not
// an error.
var schemaRequiredProps = map[string][]string{
	"Organization":   {"name", "url"},
	"LocalBusiness":  {"name", "address"},
	"Article":        {"headline", "author", "datePublished"},
	"BlogPosting":    {"headline", "author", "datePublished"},
	"NewsArticle":    {"headline", "author", "datePublished"},
	"Product":        {"name", "description"},
	"WebSite":        {"name", "url"},
	"WebPage":        {"name"},
	"BreadcrumbList": {"itemListElement"},
	"FAQPage":        {"mainEntity"},
	"HowTo":          {"name", "step"},
	"Recipe":         {"name", "recipeIngredient", "recipeInstructions"},
	"Event":          {"name", "startDate", "location"},
	"Person":         {"name"},
	"VideoObject":    {"name", "description", "thumbnailUrl", "uploadDate"},
}

// schemaURLProps are the properties that must carry absolute URLs when
// present, either directly as strings or via a nested @id reference.
var schemaURLProps = []string{"url", "image", "logo", "sameAs"}

var schemaSpecs = map[string]ruleSpec{
	"SCHEMA001": {
		code: "SCHEMA001", severity: report.SeverityError,
		element:  `<script type="application/ld+json">`,
		rule:     "JSON-LD must be valid JSON",
		expected: "Valid JSON object",
	},
	"SCHEMA002": {
		code: "SCHEMA002", severity: report.SeverityError,
		element:  "@context",
		rule:     "JSON-LD must have @context",
		expected: `"@context": "https://schema.org"`,
		fix:      `Add "@context": "https://schema.org" as first property in JSON-LD object.`,
	},
	"SCHEMA003": {
		code: "SCHEMA003", severity: report.SeverityError,
		element:  "@context",
		rule:     "@context must reference schema.org",
		expected: `"https://schema.org"`,
	},
	"SCHEMA004": {
		code: "SCHEMA004", severity: report.SeverityError,
		element:  "@type",
		rule:     "JSON-LD must have @type",
		expected: `"@type": "Organization|Article|Product|..."`,
		fix:      `Add "@type": "YourSchemaType" to specify the schema type.`,
	},
	"SCHEMA005": {
		code: "SCHEMA005", severity: report.SeverityError,
	},
	"SCHEMA006": {
		code: "SCHEMA006", severity: report.SeverityError,
		expected: "https://yourdomain.com/...",
	},
}

func schemaSpec(code string) ruleSpec { return schemaSpecs[code] }

// ValidateSchemas validates every structured-data block in the content.
// A file with no blocks at all passes: absence of structured data is handled
// by the dispatcher's applicability sniff, not treated as a defect here.
//
// All defects inside one block anchor at the block's opening line; structural
// extraction cannot attribute inner properties more precisely.
func ValidateSchemas(content, filePath string) (errs, warns []report.ValidationError) {
	blocks := extract.JSONLDBlocks(content)

	for i, block := range blocks {
		label := "Schema"
		if len(blocks) > 1 {
			label = fmt.Sprintf("Schema %d", i+1)
		}
		e, w := validateSchemaBlock(block.Raw, filePath, block.Line, label)
		errs = append(errs, e...)
		warns = append(warns, w...)
	}

	return errs, warns
}

// validateSchemaBlock parses one raw block and validates its object, or each
// dict entry of its @graph array. Sub-object labels carry the graph index so
// every defect names exactly which sub-object it belongs to.
func validateSchemaBlock(raw, filePath string, line int, label string) (errs, warns []report.ValidationError) {
	var schema map[string]any
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		e := schemaSpec("SCHEMA001").at(filePath, line)
		e.Current = "Parse error: " + err.Error()
		e.Fix = fmt.Sprintf("Fix JSON syntax error: %s. Check for missing commas, quotes, or brackets.", err.Error())
		return []report.ValidationError{e}, nil
	}

	if graph, ok := schema["@graph"].([]any); ok {
		for j, item := range graph {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			e, w := validateSchemaObject(obj, filePath, line, fmt.Sprintf("%s[@graph][%d]", label, j))
			errs = append(errs, e...)
			warns = append(warns, w...)
		}
		return errs, warns
	}

	return validateSchemaObject(schema, filePath, line, label)
}

func validateSchemaObject(schema map[string]any, filePath string, line int, label string) (errs, warns []report.ValidationError) {
	// "Schema" labels a lone top-level object; the plain element name is
	// unambiguous there. Any other label (indexed block, @graph entry) is
	// prepended so multi-object reports stay attributable.
	qualify := func(element string) string {
		if label == "Schema" {
			return element
		}
		return label + " " + element
	}

	context := schema["@context"]
	if context == nil || context == "" {
		e := schemaSpec("SCHEMA002").at(filePath, line)
		e.Element = qualify(e.Element)
		errs = append(errs, e)
	} else if str := fmt.Sprintf("%v", context); !strings.Contains(str, "schema.org") {
		e := schemaSpec("SCHEMA003").at(filePath, line)
		e.Element = qualify(e.Element)
		e.Current = str
		e.Fix = fmt.Sprintf("Change @context from '%s' to 'https://schema.org'.", str)
		errs = append(errs, e)
	}

	schemaType, ok := schemaTypeName(schema["@type"])
	if !ok {
		e := schemaSpec("SCHEMA004").at(filePath, line)
		e.Element = qualify(e.Element)
		errs = append(errs, e)
		return errs, warns
	}
	if schemaType == "" {
		return errs, warns
	}

	for _, prop := range schemaRequiredProps[schemaType] {
		if _, present := schema[prop]; present {
			continue
		}
		e := schemaSpec("SCHEMA005").at(filePath, line)
		e.Element = qualify(fmt.Sprintf("@type=%s", schemaType))
		e.Rule = fmt.Sprintf("%s requires '%s' property", schemaType, prop)
		e.Current = "Missing: " + prop
		e.Expected = fmt.Sprintf(`"%s": "..."`, prop)
		e.Fix = fmt.Sprintf(`Add "%s" property to %s schema. See schema.org/%s for format.`, prop, schemaType, schemaType)
		errs = append(errs, e)
	}

	for _, prop := range schemaURLProps {
		switch value := schema[prop].(type) {
		case string:
			if value != "" && !strings.HasPrefix(value, "http") {
				errs = append(errs, schemaURLError(filePath, line, qualify(prop), prop, value))
			}
		case map[string]any:
			if id, ok := value["@id"].(string); ok && id != "" && !strings.HasPrefix(id, "http") {
				errs = append(errs, schemaURLError(filePath, line, qualify(prop+".@id"), prop+".@id", id))
			}
		}
	}

	return errs, warns
}

func schemaURLError(filePath string, line int, element, prop, current string) report.ValidationError {
	e := schemaSpec("SCHEMA006").at(filePath, line)
	e.Element = element
	e.Rule = fmt.Sprintf("%s must be a valid absolute URL", prop)
	e.Current = current
	e.Fix = fmt.Sprintf("Change '%s' from '%s' to absolute URL starting with https://.", prop, current)
	return e
}

// schemaTypeName resolves the @type value: a string directly, an array by its
// first entry. ok is false when @type is absent or empty (a SCHEMA004
// defect); an empty name with ok=true means a non-string first entry, which
// ends type-specific checks without a defect.
func schemaTypeName(v any) (name string, ok bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case []any:
		if len(t) == 0 {
			return "", false
		}
		if s, ok := t[0].(string); ok && s != "" {
			return s, true
		}
		return "", true
	default:
		return "", false
	}
}
