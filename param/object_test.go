package param_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tverlaine/regkit/param"
)

// smootherClassName is the declared (type-level) class name of
// gaussianSmoother; its NameOfClass returns it unchanged.
const smootherClassName = "GaussianSmoother"

// gaussianSmoother is a minimal configurable algorithm fixture with two
// tunables, declared through value attributes.
type gaussianSmoother struct {
	param.Base

	sigma      param.Attribute[float64]
	iterations param.Attribute[int]
}

func newGaussianSmoother() *gaussianSmoother {
	s := &gaussianSmoother{}
	s.sigma.Set(1.0)
	s.iterations.Set(3)

	return s
}

func (s *gaussianSmoother) NameOfClass() string { return smootherClassName }

func (s *gaussianSmoother) Set(name, value string) bool {
	switch name {
	case "Sigma":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		s.sigma.Set(v)

		return true
	case "Iterations":
		v, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		s.iterations.Set(v)

		return true
	default:
		return false
	}
}

func (s *gaussianSmoother) Parameter() param.List {
	params := param.InsertValue(param.List(nil), "Sigma", s.sigma.Get())

	return param.InsertValue(params, "Iterations", s.iterations.Get())
}

// bandPassFilter nests a smoother and republishes its parameters under a
// qualified prefix; the nested smoother never learns it is nested.
type bandPassFilter struct {
	param.Base

	inner *gaussianSmoother
}

func newBandPassFilter() *bandPassFilter {
	return &bandPassFilter{inner: newGaussianSmoother()}
}

func (f *bandPassFilter) NameOfClass() string { return "BandPassFilter" }

func (f *bandPassFilter) Set(name, value string) bool {
	rest, ok := strings.CutPrefix(name, "Inner ")
	if !ok || rest == "" {
		return false
	}

	return f.inner.Set(strings.ToUpper(rest[:1])+rest[1:], value)
}

func (f *bandPassFilter) Parameter() param.List {
	return param.Merge(nil, f.inner.Parameter(), "Inner")
}

// interpolatorTypeName is the declared type name of adaptiveInterpolator.
// Its NameOfClass intentionally disagrees with it: the reported class
// depends on the configured mode.
const interpolatorTypeName = "AdaptiveInterpolator"

type adaptiveInterpolator struct {
	param.Base

	mode param.Attribute[string]
}

func (a *adaptiveInterpolator) NameOfClass() string {
	if a.mode.Get() == "cubic" {
		return "CubicInterpolator"
	}

	return "LinearInterpolator"
}

func (a *adaptiveInterpolator) Set(name, value string) bool {
	if name != "Mode" {
		return false
	}
	a.mode.Set(value)

	return true
}

func (a *adaptiveInterpolator) Parameter() param.List {
	return param.Insert(nil, "Mode", a.mode.Get())
}

// ConfigurableSuite exercises the configurable-object protocol end to end.
type ConfigurableSuite struct {
	suite.Suite
}

// TestBaseDefaults verifies the root defaults: no parameter is recognized
// and the parameter snapshot is empty.
func (s *ConfigurableSuite) TestBaseDefaults() {
	var base param.Base

	require.False(s.T(), base.Set("Anything", "1"), "root Set must always report failure")
	require.Empty(s.T(), base.Parameter(), "root snapshot must be empty")
}

// TestSetRecognizedAndUnrecognized verifies per-name success reporting.
func (s *ConfigurableSuite) TestSetRecognizedAndUnrecognized() {
	obj := newGaussianSmoother()

	require.True(s.T(), obj.Set("Sigma", "2.5"))
	require.False(s.T(), obj.Set("Radius", "7"), "unknown name must fail soft")
	require.False(s.T(), obj.Set("Sigma", "not-a-number"), "malformed value must fail soft")
	require.Equal(s.T(), 2.5, obj.sigma.Get(), "failed Set calls must not disturb applied state")
}

// TestApplyPartialApplication verifies that Apply replays a list with one
// unknown and one known name: the known attribute is updated and the
// unknown entry is silently ignored.
func (s *ConfigurableSuite) TestApplyPartialApplication() {
	obj := newGaussianSmoother()
	params := param.List{
		{Name: "NoSuchParameter", Value: "42"},
		{Name: "Iterations", Value: "9"},
	}

	param.Apply(obj, params)

	require.Equal(s.T(), 9, obj.iterations.Get())
	require.Equal(s.T(), 1.0, obj.sigma.Get(), "untouched attributes keep their defaults")
}

// TestSnapshotIndependence verifies that Parameter returns a fresh list:
// mutating the snapshot must not leak into the object.
func (s *ConfigurableSuite) TestSnapshotIndependence() {
	obj := newGaussianSmoother()

	snapshot := obj.Parameter()
	snapshot[0].Value = "999"

	require.Equal(s.T(), 1.0, obj.sigma.Get(), "snapshot mutation must not alias object state")
}

// TestRoundTripIdempotence verifies that replaying one object's snapshot
// into a fresh instance reproduces an identical snapshot.
func (s *ConfigurableSuite) TestRoundTripIdempotence() {
	a := newGaussianSmoother()
	require.True(s.T(), a.Set("Sigma", "0.75"))
	require.True(s.T(), a.Set("Iterations", "12"))

	b := newGaussianSmoother()
	param.Apply(b, a.Parameter())

	require.Equal(s.T(), a.Parameter(), b.Parameter())
}

// TestCompositePrefix verifies that a composite republishes nested
// parameters under the qualified prefix and routes them back on Set.
func (s *ConfigurableSuite) TestCompositePrefix() {
	f := newBandPassFilter()

	params := f.Parameter()
	require.Equal(s.T(), "Inner sigma", params[0].Name)
	require.Equal(s.T(), "Inner iterations", params[1].Name)

	require.True(s.T(), f.Set("Inner sigma", "4.5"))
	require.Equal(s.T(), 4.5, f.inner.sigma.Get())

	g := newBandPassFilter()
	param.Apply(g, f.Parameter())
	require.Equal(s.T(), f.Parameter(), g.Parameter(), "composite round-trip must be idempotent")
}

// TestMutableClassName verifies that a mutable object's run-time class
// name follows its state and may disagree with the declared type name.
func (s *ConfigurableSuite) TestMutableClassName() {
	obj := &adaptiveInterpolator{}

	require.Equal(s.T(), "LinearInterpolator", obj.NameOfClass())
	require.True(s.T(), obj.Set("Mode", "cubic"))
	require.Equal(s.T(), "CubicInterpolator", obj.NameOfClass())
	require.NotEqual(s.T(), interpolatorTypeName, obj.NameOfClass())
}

func TestConfigurableSuite(t *testing.T) {
	suite.Run(t, new(ConfigurableSuite))
}
