package domain

// StepKind names a scenario step.
type StepKind string

// Scenario step kinds.
const (
	StepListen        StepKind = "listen"
	StepCancel        StepKind = "cancel"
	StepMergeQuery    StepKind = "merge_query"
	StepMergeMutation StepKind = "merge_mutation"
	StepLookup        StepKind = "lookup"
	StepUpdate        StepKind = "update"
	StepClear         StepKind = "clear"
	StepDump          StepKind = "dump"
)

// Scenario is a scripted sequence of cache operations, replayed by the CLI.
type Scenario struct {
	// Path is the file the scenario was loaded from.
	Path string
	// Selections are the named selections steps refer to.
	Selections map[string]*Selection
	// Steps run in order.
	Steps []Step
}

// Step is one scenario operation. Only the fields relevant to Kind are set.
type Step struct {
	Kind StepKind
	// Line is the 1-based line of the step in the scenario file.
	Line int
	// Watch names the watch a listen step registers or a cancel step cancels.
	Watch string
	// Selection names the selection of listen, lookup and merge steps.
	Selection string
	// Root is the entity a listen step watches.
	Root CacheKey
	// Data is the response payload of merge steps.
	Data Object
	// Key is the entity an update step patches.
	Key CacheKey
	// Patch is the modification an update step applies.
	Patch Patch
}
