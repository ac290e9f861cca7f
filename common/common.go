package common

import (
	"time"

	"github.com/jubranakram/root-finding-algorithms/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveWrapper wraps the user-provided target function.
//
// If the function is an Initer it will be called once at the start of the
// search. If it is a Statuser it can end the search early, and if it is a
// Resulter it is told when the search has finished.
type ObjectiveWrapper struct {
	fun        interface{}
	initCalled bool
}

func (o *ObjectiveWrapper) Init(targetFunction interface{}) {
	if o.initCalled {
		return
	}
	o.initCalled = true
	o.fun = targetFunction

	initer, ok := targetFunction.(Initer)
	if ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

func (o *ObjectiveWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	dataWriter, ok := o.fun.(write.DataAdder)
	if ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// CommonSettings is a set of options available to all root finders
type CommonSettings struct {
	MaximumIterations          int           // Sets the maximum number of iterations that can occur
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure.
// The default is to stop after 100 iterations and to place no limit on
// function evaluations or runtime
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          100,
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		MaximumRuntime:             -1, // Defaults to no maximum runtime
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the root finder
	FunctionEvaluations int           // Total number of function evaluations taken by the root finder
	Runtime             time.Duration // Total runtime elapsed during the search
	Status              Status        // How did the search end
}

// Common provides routines for controlling the settings provided by
// CommonSettings.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveWrapper
}

// NewCommon creates a new Common structure, and adds itself to the data adders
func NewCommon() *Common {
	c := &Common{
		Display:          write.NewDisplay(),
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
	c.AddDataAdder(c, c.ObjectiveWrapper)
	return c
}

// Init initializes all of the values in common at the start of the search
func (c *Common) Init(settings *CommonSettings, targetFunction interface{}) {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	c.Display.Init(c.settings.WriteSettings)
	c.ObjectiveWrapper.Init(targetFunction)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if any of the limits controlled by common has been reached
// (iterations, function evaluations, runtime)
func (c *Common) Status() Status {
	status := c.ObjectiveWrapper.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter > c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals > c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveWrapper.Result()
	r := &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
	return r
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration count, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
	c.Display.Iterate()
}
