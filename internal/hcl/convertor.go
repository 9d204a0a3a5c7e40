package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeTopics accepts either a list of names or a single string of
// whitespace-separated names, mirroring the @topic comment syntax.
func decodeTopics(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	val, diags := evaluate(expr)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	if val.Type() == cty.String {
		return strings.Fields(val.AsString()), nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, hcl.Diagnostics{invalidValue(expr, "topics",
			fmt.Sprintf("Expected a list of strings, got %s.", val.Type().FriendlyName()))}
	}
	if !listVal.IsWhollyKnown() {
		return nil, hcl.Diagnostics{invalidValue(expr, "topics", "Topic names must be known values.")}
	}

	var topics []string
	for it := listVal.ElementIterator(); it.Next(); {
		_, el := it.Element()
		if el.IsNull() {
			return nil, hcl.Diagnostics{invalidValue(expr, "topics", "Topic names must not be null.")}
		}
		// A single element may itself hold several names.
		topics = append(topics, strings.Fields(el.AsString())...)
	}
	return topics, nil
}

// decodeBuffer converts the buffer attribute to a positive int. Numbers and
// numeric strings are both accepted; null means unset.
func decodeBuffer(expr hcl.Expression) (int, hcl.Diagnostics) {
	val, diags := evaluate(expr)
	if diags.HasErrors() || val.IsNull() {
		return 0, diags
	}

	numVal, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, hcl.Diagnostics{invalidValue(expr, "buffer",
			fmt.Sprintf("Expected a whole number, got %s.", val.Type().FriendlyName()))}
	}

	var size int
	if err := gocty.FromCtyValue(numVal, &size); err != nil {
		return 0, hcl.Diagnostics{invalidValue(expr, "buffer", "Expected a whole number.")}
	}
	if size < 1 {
		return 0, hcl.Diagnostics{invalidValue(expr, "buffer", "Buffer size must be at least 1.")}
	}
	return size, nil
}

func invalidValue(expr hcl.Expression, attr, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %q value", attr),
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}
}
