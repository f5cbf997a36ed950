package nodes

import (
	"context"
	"errors"
	"strconv"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/i18n"
	"github.com/specialistvlad/batchignore/internal/idlist"
	"golang.org/x/text/message"
)

// ValidateInput defines the inputs of the BatchIgnoreManager node.
type ValidateInput struct {
	IgnoreEnabled bool   `cty:"ignore_enabled"`
	NodeList      string `cty:"node_list"`
}

// ValidateOutput defines the outputs of the BatchIgnoreManager node.
type ValidateOutput struct {
	Status        string `cty:"status"`
	IgnoreEnabled bool   `cty:"ignore_enabled"`
	NodeList      string `cty:"node_list"`
}

// ValidateList checks rawList and reports it back in canonical form.
//
// On success the status reports the element count and the ignore state, the
// flag is passed through and NodeList is the canonical encoding. On any
// failure the status describes the problem, IgnoreEnabled is false whatever
// the caller asked for, and NodeList is "[]": a list that cannot be read must
// never be treated as active.
func ValidateList(p *message.Printer, ignoreEnabled bool, rawList string) ValidateOutput {
	out, _ := validate(p, ignoreEnabled, rawList)
	return out
}

// OnRunValidate is the handler for the BatchIgnoreManager node.
func OnRunValidate(ctx context.Context, in *ValidateInput) *ValidateOutput {
	out, err := validate(i18n.PrinterFromContext(ctx), in.IgnoreEnabled, in.NodeList)
	logger := ctxlog.FromContext(ctx)
	if err != nil {
		logger.Warn("Node list rejected.", "kind", idlist.KindOf(err).String(), "error", err)
	} else {
		logger.Debug("Node list validated.", "node_list", out.NodeList, "ignore_enabled", out.IgnoreEnabled)
	}
	return &out
}

func validate(p *message.Printer, ignoreEnabled bool, rawList string) (ValidateOutput, error) {
	list, err := idlist.Decode(rawList)
	if err != nil {
		return rejected(p, err), err
	}
	canonical, err := list.Canonical()
	if err != nil {
		return rejected(p, err), err
	}

	state := p.Sprintf(i18n.StateDisabledKey)
	if ignoreEnabled {
		state = p.Sprintf(i18n.StateEnabledKey)
	}
	// The int selects the plural form; the digits are what gets printed, as
	// the printer would group thousands.
	status := p.Sprintf(i18n.StatusManagedKey, len(list), strconv.Itoa(len(list)), state)

	return ValidateOutput{
		Status:        status,
		IgnoreEnabled: ignoreEnabled,
		NodeList:      canonical,
	}, nil
}

func rejected(p *message.Printer, err error) ValidateOutput {
	var status string
	switch idlist.KindOf(err) {
	case idlist.KindDecode:
		status = p.Sprintf(i18n.ErrorDecodeKey, cause(err))
	case idlist.KindShape:
		status = p.Sprintf(i18n.ErrorShapeKey)
	default:
		status = p.Sprintf(i18n.ErrorUnexpectedKey, cause(err))
	}
	return ValidateOutput{
		Status:        status,
		IgnoreEnabled: false,
		NodeList:      idlist.EmptyCanonical,
	}
}

// cause strips the kind prefix idlist errors carry; the surrounding sentence
// already says what went wrong.
func cause(err error) string {
	var listErr *idlist.Error
	if errors.As(err, &listErr) && listErr.Err != nil {
		return listErr.Err.Error()
	}
	return err.Error()
}
