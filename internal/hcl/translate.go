// This file translates the HCL schema struct of a topic descriptor into the
// format-agnostic config.Descriptor.

package hcl

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/ctxlog"
	"github.com/vk/topicgen/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

func translateTopicFile(ctx context.Context, path string, f *schema.TopicFile) (*config.Descriptor, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	desc := &config.Descriptor{
		Path:    path,
		Message: strings.TrimSpace(f.Message),
	}

	if isExprDefined(ctx, f.Topics, "topics") {
		topics, topicDiags := decodeTopics(f.Topics)
		diags = append(diags, topicDiags...)
		desc.Topics = topics
	}

	if isExprDefined(ctx, f.Buffer, "buffer") {
		size, bufDiags := decodeBuffer(f.Buffer)
		diags = append(diags, bufDiags...)
		desc.BufferSize = size
	}

	return desc, diags
}

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional expression fields with a zero-width
// placeholder, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// evaluate returns the value of expr, or a null value with no diagnostics
// when the expression evaluates to null.
func evaluate(expr hcl.Expression) (cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return val, nil
}
