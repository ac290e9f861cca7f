package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of Statusers
// and returns the first non-Continue result
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[ResidualAbsTol] = "ResidualAbsTol"
	statusStrings[ResidualChangeTol] = "ResidualChangeTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[RefinerError] = "RefinerError"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
	statusStrings[BracketLost] = "BracketLost"
}

// Status is a type for expressing whether a root search has finished.
// Zero signifies no convergence so the search should continue.
// Positive values indicate a successful convergence
// negative values express a failure to converge in some way
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if the status expresses a successful convergence
func (s Status) Converged() bool {
	return s > Continue
}

const (
	Continue Status = iota
	// ResidualAbsTol means the function value at the estimate is below
	// the absolute threshold
	ResidualAbsTol
	// ResidualChangeTol means the residual has stopped changing between
	// iterations
	ResidualChangeTol
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	RefinerError
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
	// BracketLost means the bracketing interval collapsed with the
	// endpoints crossing before the residual met the threshold
	BracketLost
)

var lastStatus Status = 256
