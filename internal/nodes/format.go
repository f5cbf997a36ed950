package nodes

import (
	"context"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/i18n"
	"github.com/specialistvlad/batchignore/internal/idlist"
	"golang.org/x/text/message"
)

// FormatInput defines the inputs of the NodeIDFormatter node.
type FormatInput struct {
	NodeIDs string `cty:"node_ids"`
}

// FormatOutput defines the outputs of the NodeIDFormatter node.
type FormatOutput struct {
	Formatted string `cty:"formatted"`
}

// FormatIDs turns "a, b ,, c" into a pretty-printed JSON array for operator
// review. Blank input gives "[]". An encoding failure is reported as a single
// error sentence in Formatted.
func FormatIDs(p *message.Printer, rawIDs string) FormatOutput {
	out, _ := format(p, rawIDs, idlist.List.Pretty)
	return out
}

// OnRunFormat is the handler for the NodeIDFormatter node.
func OnRunFormat(ctx context.Context, in *FormatInput) *FormatOutput {
	out, err := format(i18n.PrinterFromContext(ctx), in.NodeIDs, idlist.List.Pretty)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Formatting node ids failed.", "error", err)
	}
	return &out
}

func format(p *message.Printer, rawIDs string, encode func(idlist.List) (string, error)) (FormatOutput, error) {
	// Blank input parses to an empty list, which encodes as "[]".
	pretty, err := encode(idlist.ParseCommaSeparated(rawIDs))
	if err != nil {
		return FormatOutput{Formatted: p.Sprintf(i18n.ErrorFormatKey, cause(err))}, err
	}
	return FormatOutput{Formatted: pretty}, nil
}
