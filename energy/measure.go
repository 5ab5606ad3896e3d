// Package energy: the Measure enumeration and its category structure.
//
// This file declares the closed value set, the category sentinels, and the
// structural queries (IsValid, Category, Measures, Hash). The declaration
// order below is part of the contract: Parse's fallback scan walks it from
// the highest value down, so new values must be added inside the run of
// their category, and the relative order of existing values must never
// change.
package energy

import (
	"encoding/binary"
	"hash/fnv"
)

// Measure identifies one energy term of the registration objective.
type Measure int

// Enumeration of all available energy terms. The Begin/End pairs are
// category sentinels: they delimit the runs and are never valid
// selections.
const (
	// Unknown is the invalid/unresolved energy term.
	Unknown Measure = iota

	// SimBegin marks the start of the image (dis-)similarity measures.
	SimBegin

	// JE is the joint entropy measure.
	JE
	// CC is the cross-correlation measure.
	CC
	// MI is the mutual information measure.
	MI
	// NMI is the normalized mutual information measure.
	NMI
	// SSD is the sum of squared differences measure.
	SSD
	// CRXY is the correlation ratio of Y given X.
	CRXY
	// CRYX is the correlation ratio of X given Y.
	CRYX
	// LC is the label consistency measure.
	LC
	// K is the kappa statistic measure.
	K
	// ML is the maximum likelihood measure.
	ML
	// NGFCos is the cosine of the normalized gradient field.
	NGFCos
	// LNCC is the normalized/local cross-correlation measure.
	LNCC

	// SimEnd marks the end of the image (dis-)similarity measures.
	SimEnd

	// PDMBegin marks the start of the point-set distance measures.
	PDMBegin

	// FRE is the fiducial registration error measure.
	FRE
	// CorrespondenceDistance is the point correspondence distance measure.
	CorrespondenceDistance
	// CurrentsDistance is the distance based on the currents representation.
	CurrentsDistance
	// VarifoldDistance is the distance based on the varifold representation.
	VarifoldDistance

	// PDMEnd marks the end of the point-set distance measures.
	PDMEnd

	// EFTBegin marks the start of the external point-set forces.
	EFTBegin

	// BalloonForce is the balloon/inflation force.
	BalloonForce
	// ImageEdgeForce is the image edge force.
	ImageEdgeForce
	// ImplicitSurfaceDistance is the implicit surface distance force.
	ImplicitSurfaceDistance
	// ImplicitSurfaceSpringForce is the implicit surface spring force.
	ImplicitSurfaceSpringForce

	// EFTEnd marks the end of the external point-set forces.
	EFTEnd

	// IFTBegin marks the start of the internal point-set forces.
	IFTBegin

	// MetricDistortion minimizes metric distortion.
	MetricDistortion
	// Stretching is the stretching force towards rest edge lengths.
	Stretching
	// Curvature minimizes the curvature of the point-set surface.
	Curvature
	// QuadraticCurvature fits neighbor-to-tangent-plane distances quadratically.
	QuadraticCurvature
	// NonSelfIntersection repels too-close non-neighboring triangles.
	NonSelfIntersection
	// RepulsiveForce repels too-close non-neighboring nodes.
	RepulsiveForce
	// InflationForce inflates the point-set surface.
	InflationForce
	// SpringForce is the spring force.
	SpringForce

	// IFTEnd marks the end of the internal point-set forces.
	IFTEnd

	// CMBegin marks the start of the transformation constraints.
	CMBegin

	// VolumePreservation is the volume preservation constraint.
	VolumePreservation
	// TopologyPreservation is the topology preservation constraint.
	TopologyPreservation
	// Sparsity is the default sparsity constraint.
	Sparsity
	// BendingEnergy is the thin-plate spline bending energy.
	BendingEnergy
	// L0Norm is the sparsity constraint based on the l0-norm.
	L0Norm
	// L1Norm is the sparsity constraint based on the l1-norm.
	L1Norm
	// L2Norm is the sparsity constraint based on the l2-norm.
	L2Norm
	// SqLogDetJac penalizes the squared log of the Jacobian determinant.
	SqLogDetJac
	// MinDetJac constrains the minimum Jacobian determinant.
	MinDetJac

	// CMEnd marks the end of the transformation constraints.
	CMEnd

	// measureCount is one past the last declared value.
	measureCount
)

// Category classifies a selectable Measure by the sentinel run it lies in.
type Category int

const (
	// CategoryNone is the category of Unknown and of every sentinel.
	CategoryNone Category = iota

	// CategorySimilarity covers the image (dis-)similarity measures.
	CategorySimilarity

	// CategoryPointSetDistance covers the point-set distance measures.
	CategoryPointSetDistance

	// CategoryExternalForce covers the external point-set forces.
	CategoryExternalForce

	// CategoryInternalForce covers the internal point-set forces.
	CategoryInternalForce

	// CategoryConstraint covers the transformation constraints.
	CategoryConstraint
)

// categoryRun delimits one sentinel-bounded run of selectable values.
type categoryRun struct {
	category Category
	begin    Measure // sentinel before the first selectable value
	end      Measure // sentinel after the last selectable value
}

// categoryRuns lists the runs in declaration order. Parse's alias phase
// consults categories in exactly this order.
var categoryRuns = []categoryRun{
	{CategorySimilarity, SimBegin, SimEnd},
	{CategoryPointSetDistance, PDMBegin, PDMEnd},
	{CategoryExternalForce, EFTBegin, EFTEnd},
	{CategoryInternalForce, IFTBegin, IFTEnd},
	{CategoryConstraint, CMBegin, CMEnd},
}

// String returns a short human-readable category label.
func (c Category) String() string {
	switch c {
	case CategorySimilarity:
		return "similarity"
	case CategoryPointSetDistance:
		return "point-set distance"
	case CategoryExternalForce:
		return "external force"
	case CategoryInternalForce:
		return "internal force"
	case CategoryConstraint:
		return "constraint"
	default:
		return "none"
	}
}

// Measures returns the selectable values of the category in declaration
// order. CategoryNone yields nil.
func (c Category) Measures() []Measure {
	for _, run := range categoryRuns {
		if run.category != c {
			continue
		}
		ms := make([]Measure, 0, run.end-run.begin-1)
		for m := run.begin + 1; m < run.end; m++ {
			ms = append(ms, m)
		}

		return ms
	}

	return nil
}

// Category returns the category whose run contains m, or CategoryNone for
// Unknown, sentinels, and out-of-range values.
func (m Measure) Category() Category {
	for _, run := range categoryRuns {
		if run.begin < m && m < run.end {
			return run.category
		}
	}

	return CategoryNone
}

// IsValid reports whether m is a selectable energy term, i.e. lies
// strictly inside one of the category runs.
func (m Measure) IsValid() bool {
	return m.Category() != CategoryNone
}

// Hash projects m to a stable 64-bit key derived from its ordinal value.
// The projection depends only on the ordinal, never on category
// membership, so it is constant for the program's lifetime.
func (m Measure) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(m)))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
