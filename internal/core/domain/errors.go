package domain

import "go.trai.ch/zerr"

var (
	// ErrContractViolation is the panic value cause for calls that break the cache contract:
	// shape mismatches between stored data and a selection or patch. These are bugs in the
	// calling layer and never cross the cache boundary as ordinary errors.
	ErrContractViolation = zerr.New("cache contract violation")

	// ErrInvalidCacheKey is returned when a textual cache key cannot be parsed.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrHookFailed is returned when a post-merge hook reports an error.
	ErrHookFailed = zerr.New("post-merge hook failed")

	// ErrTxClosed is the panic cause when a hook transaction is used after its hook returned.
	ErrTxClosed = zerr.New("transaction used after its hook returned")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrScenarioReadFailed is returned when a scenario file cannot be read.
	ErrScenarioReadFailed = zerr.New("failed to read scenario file")

	// ErrScenarioParseFailed is returned when a scenario file cannot be parsed.
	ErrScenarioParseFailed = zerr.New("failed to parse scenario file")

	// ErrInvalidStep is returned when a scenario step is malformed.
	ErrInvalidStep = zerr.New("invalid scenario step")

	// ErrUnknownSelection is returned when a step names a selection the scenario does not define.
	ErrUnknownSelection = zerr.New("unknown selection")

	// ErrUnknownWatch is returned when a step names a watch that was never registered.
	ErrUnknownWatch = zerr.New("unknown watch")

	// ErrSelectionSyntax is returned when selection text cannot be compiled.
	ErrSelectionSyntax = zerr.New("invalid selection syntax")

	// ErrPayloadDecodeFailed is returned when a JSON payload cannot be decoded into a value.
	ErrPayloadDecodeFailed = zerr.New("failed to decode payload")

	// ErrPayloadNotObject is returned when a response payload is not a JSON object.
	ErrPayloadNotObject = zerr.New("payload is not an object")

	// ErrReplayFailed is returned when a scenario replay stops on an error.
	ErrReplayFailed = zerr.New("scenario replay failed")

	// ErrWatcherStartFailed is returned when the scenario file watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to watch scenario file")
)

// Violation builds the panic value for a contract violation, annotated with metadata pairs.
func Violation(message string, kv ...any) error {
	err := zerr.Wrap(ErrContractViolation, message)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		err = zerr.With(err, key, kv[i+1])
	}
	return err
}
