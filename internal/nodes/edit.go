package nodes

import (
	"context"
	"strings"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/idlist"
)

// EditInput defines the inputs of the NodeListAdd and NodeListRemove nodes.
type EditInput struct {
	NodeList string `cty:"node_list"`
	NodeIDs  string `cty:"node_ids"`
}

// EditOutput defines the outputs of the NodeListAdd and NodeListRemove nodes.
type EditOutput struct {
	NodeList string `cty:"node_list"`
}

// AddToList appends the comma-separated rawIDs missing from rawList and
// returns the pretty-printed result. A list that is not valid JSON is returned
// unchanged; valid JSON that is not an array counts as an empty list.
func AddToList(rawList, rawIDs string) EditOutput {
	out, _ := edit(rawList, rawIDs, idlist.List.Add)
	return out
}

// RemoveFromList removes the first occurrence of each comma-separated id in
// rawIDs from rawList. Failures behave as in AddToList.
func RemoveFromList(rawList, rawIDs string) EditOutput {
	out, _ := edit(rawList, rawIDs, idlist.List.Remove)
	return out
}

// OnRunAdd is the handler for the NodeListAdd node.
func OnRunAdd(ctx context.Context, in *EditInput) *EditOutput {
	return runEdit(ctx, in, idlist.List.Add)
}

// OnRunRemove is the handler for the NodeListRemove node.
func OnRunRemove(ctx context.Context, in *EditInput) *EditOutput {
	return runEdit(ctx, in, idlist.List.Remove)
}

type editFunc func(idlist.List, ...string) idlist.List

func runEdit(ctx context.Context, in *EditInput, fn editFunc) *EditOutput {
	out, err := edit(in.NodeList, in.NodeIDs, fn)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Node list left unchanged.", "kind", idlist.KindOf(err).String(), "error", err)
	}
	return &out
}

func edit(rawList, rawIDs string, fn editFunc) (EditOutput, error) {
	list := idlist.List{}
	if strings.TrimSpace(rawList) != "" {
		decoded, err := idlist.Decode(rawList)
		switch {
		case err == nil:
			list = decoded
		case idlist.KindOf(err) == idlist.KindShape:
			// Keep the empty list.
		default:
			return EditOutput{NodeList: rawList}, err
		}
	}

	pretty, err := fn(list, idlist.ParseCommaSeparated(rawIDs)...).Pretty()
	if err != nil {
		return EditOutput{NodeList: rawList}, err
	}
	return EditOutput{NodeList: pretty}, nil
}
