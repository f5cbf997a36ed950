// Package nodes implements the batch-ignore nodes the host can place in a
// graph, and registers them with the registry.
//
// Each node is a pure function (ValidateList, FormatIDs, AddToList,
// RemoveFromList) plus a thin OnRun handler that pulls the locale and logger
// out of the context. None of them return errors: every failure is reported
// through the node's outputs, with safe fallback values, so that one bad
// input never disrupts the rest of a graph evaluation.
package nodes
