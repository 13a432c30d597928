package report

// Hook protocol envelopes. Exactly one envelope is written to stdout per
// invocation, in one of three deterministic shapes:
//
//	skip:    {"decision": "continue"}
//	success: {"decision": "continue", "hookSpecificOutput": {"feedback": "..."}}
//	failure: {"hookSpecificOutput": {"feedback": "..."}}
//
// The failure shape deliberately omits the decision key: its absence signals
// the caller to treat the feedback as blocking rather than pass-through.

// HookOutput carries the feedback text inside a hook envelope.
type HookOutput struct {
	Feedback string `json:"feedback"`
}

// HookResponse is the envelope written to stdout for PostToolUse events.
type HookResponse struct {
	Decision           string      `json:"decision,omitempty"`
	HookSpecificOutput *HookOutput `json:"hookSpecificOutput,omitempty"`
}

// Skip returns the neutral envelope used when the file is not applicable or
// unreadable. I/O trouble is never a validation error.
func Skip() HookResponse {
	return HookResponse{Decision: "continue"}
}

// Passed returns the success envelope with a one-line confirmation.
func Passed(file, validator string) HookResponse {
	return HookResponse{
		Decision:           "continue",
		HookSpecificOutput: &HookOutput{Feedback: PassedLine(file, validator)},
	}
}

// PassedWith returns the success envelope around pre-rendered feedback,
// for aggregates confirming several validators at once.
func PassedWith(feedback string) HookResponse {
	return HookResponse{
		Decision:           "continue",
		HookSpecificOutput: &HookOutput{Feedback: feedback},
	}
}

// Blocking returns the failure envelope around rendered feedback. The
// decision key is intentionally absent.
func Blocking(feedback string) HookResponse {
	return HookResponse{
		HookSpecificOutput: &HookOutput{Feedback: feedback},
	}
}

// HookResponse converts the result to its hook envelope. A result with
// nothing to surface confirms success; anything else (errors, or warnings
// alone) goes through the blocking feedback path so warnings still reach the
// caller.
func (r *Result) HookResponse() HookResponse {
	if !r.NeedsFeedback() {
		return Passed(r.File, r.Validator)
	}
	return Blocking(r.Feedback())
}

// InfoResponse is the simpler, never-blocking envelope used by informational
// surfaces (stop-event acknowledgments, report-file notices).
type InfoResponse struct {
	Continue bool   `json:"continue"`
	Message  string `json:"message,omitempty"`
}

// Info returns an informational envelope. Continue is always true.
func Info(message string) InfoResponse {
	return InfoResponse{Continue: true, Message: message}
}
