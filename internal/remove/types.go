package remove

// Step identifies one removal method in the fixed M1..M9 sequence.
type Step string

const (
	StepUninstallString Step = "M1_UninstallString"
	StepMsiexec         Step = "M2_Msiexec"
	StepAppxRemove      Step = "M3_AppxRemove"
	StepProcessKill     Step = "M4_ProcessKill"
	StepFileDelete      Step = "M5_FileDelete"
	StepRegistryClean   Step = "M6_RegistryClean"
	StepServiceRemove   Step = "M7_ServiceRemove"
	StepTakeOwnership   Step = "M8_TakeOwnership"
	StepBootTimeDelete  Step = "M9_BootTimeDelete"
)

// Aggregate removal statuses.
const (
	StatusSuccess    = "success"
	StatusAggressive = "success - aggressive cleanup only"
	StatusFailure    = "failure in all attempted methods"
)

// StepOutcome records one attempted method.
type StepOutcome struct {
	Step    Step   `json:"step"`
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

// Result is the per-application removal record. Steps appear in attempt
// order; methods skipped as inapplicable are absent.
type Result struct {
	Name        string        `json:"name"`
	Steps       []StepOutcome `json:"steps"`
	FinalStatus string        `json:"final_status"`
}

func (r *Result) record(step Step, success bool, detail string) {
	r.Steps = append(r.Steps, StepOutcome{Step: step, Success: success, Detail: detail})
}

func (r *Result) succeeded(step Step) bool {
	for _, s := range r.Steps {
		if s.Step == step && s.Success {
			return true
		}
	}
	return false
}

// finalize derives the aggregate status. A clean uninstall (M1, M2 or M3)
// is a full success; otherwise any aggressive cleanup win (M5, M6 or M7)
// still counts, just flagged as such.
func (r *Result) finalize() {
	switch {
	case r.succeeded(StepUninstallString) || r.succeeded(StepMsiexec) || r.succeeded(StepAppxRemove):
		r.FinalStatus = StatusSuccess
	case r.succeeded(StepFileDelete) || r.succeeded(StepRegistryClean) || r.succeeded(StepServiceRemove):
		r.FinalStatus = StatusAggressive
	default:
		r.FinalStatus = StatusFailure
	}
}
