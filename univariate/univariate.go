// Package univariate implements root-refinement methods for scalar
// functions of a single variable: bisection, false position,
// Newton-Raphson, secant and modified secant.
package univariate

import (
	"math"

	"github.com/jubranakram/root-finding-algorithms/common"
	"github.com/jubranakram/root-finding-algorithms/write"
)

// Objective is the function whose root is sought
type Objective interface {
	Obj(x float64) float64
}

// ObjDeriver evaluates the function and its first derivative at x
type ObjDeriver interface {
	ObjDeriv(x float64) (f float64, fder float64)
}

// ObjectiveFunc adapts a plain function to the Objective interface
type ObjectiveFunc func(x float64) float64

func (f ObjectiveFunc) Obj(x float64) float64 { return f(x) }

// DerivFunc pairs a function with its derivative as an ObjDeriver
type DerivFunc struct {
	F    func(x float64) float64
	FDer func(x float64) float64
}

func (d DerivFunc) Obj(x float64) float64 { return d.F(x) }

func (d DerivFunc) ObjDeriv(x float64) (float64, float64) { return d.F(x), d.FDer(x) }

// Settings is a structure containing settings for univariate
// root finders. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings

	// Threshold is the absolute convergence tolerance on the function
	// value. The search has converged at x once |f(x)| < Threshold
	Threshold float64

	// ResidualRelTol ends the search when the residual has changed by
	// less than this amount over ResidualRelWindow iterations. A negative
	// value disables the check
	ResidualRelTol    float64
	ResidualRelWindow int
}

// DefaultSettings returns the default settings for univariate root finders:
// a threshold of 1e-3 on the function value, a cap of 100 iterations, and
// no relative-change check
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:    common.DefaultCommonSettings(),
		Threshold:         1e-3,
		ResidualRelTol:    -1,
		ResidualRelWindow: 5,
	}
}

// Helper is a helper struct for root finders. Not intended for use by
// callers of the root-finding functions, but exported to aid others who are
// building refinement algorithms
//
// Refinement implementers should call Init() at the beginning of a search
// and should call Status() to check tolerances. At the end of every
// iteration they should call Iterate()
type Helper struct {
	*common.Common

	resid *common.ResidualToler

	locCurr   float64
	residCurr float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	h := &Helper{
		Common: common.NewCommon(),
		resid:  &common.ResidualToler{},
	}
	h.AddDataAdder(h)
	return h
}

func (h *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "X", Value: h.locCurr})
	v = append(v, &write.Value{Heading: "F(X)", Value: h.residCurr})
	return v
}

func (h *Helper) Init(s *Settings, targetFunction interface{}) {
	h.Common.Init(s.CommonSettings, targetFunction)
	h.resid.Init(s.Threshold, s.ResidualRelTol, s.ResidualRelWindow, math.Inf(1))

	h.locCurr = math.NaN()
	h.residCurr = math.Inf(1)
}

func (h *Helper) Iterate(loc, obj float64, nFunEvals int) {
	h.Common.Iterate(nFunEvals)
	h.resid.Add(math.Abs(obj))

	h.locCurr = loc
	h.residCurr = obj
}

func (h *Helper) Status() common.Status {
	if h.resid.AbsConverged() {
		return common.ResidualAbsTol
	}
	if h.resid.RelConverged() {
		return common.ResidualChangeTol
	}
	return h.Common.Status()
}

func (h *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: h.Common.Result(status),
		Root:         h.locCurr,
		Residual:     h.residCurr,
	}
}

type Result struct {
	*common.CommonResult
	Root     float64 // Last estimate of the root. A root only if Status.Converged()
	Residual float64 // Function value at Root
}
