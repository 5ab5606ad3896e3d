// Package energy: two-way conversion between Measure values and names.
package energy

import "errors"

// ErrUnknownMeasure indicates that Parse could not resolve the input to
// any energy term.
var ErrUnknownMeasure = errors.New("energy: unknown energy measure name")

// String returns the canonical short code of a selectable measure. Every
// other value, sentinels and Unknown included, renders as "Unknown".
//
// String is pure and is the ground truth for Parse's fallback scan: a
// selectable value is resolvable by name exactly when String returns its
// code here.
func (m Measure) String() string {
	switch m {
	// Image (dis-)similarity measures
	case JE:
		return "JE"
	case CC:
		return "CC"
	case MI:
		return "MI"
	case NMI:
		return "NMI"
	case SSD:
		return "SSD"
	case CRXY:
		return "CR_XY"
	case CRYX:
		return "CR_YX"
	case LC:
		return "LC"
	case K:
		return "K"
	case ML:
		return "ML"
	case NGFCos:
		return "NGF_COS"
	case LNCC:
		return "LNCC"

	// Point-set distance measures
	case FRE:
		return "FRE"
	case CorrespondenceDistance:
		return "PCD"
	case CurrentsDistance:
		return "CurrentsDistance"
	case VarifoldDistance:
		return "VarifoldDistance"

	// External point-set forces
	case BalloonForce:
		return "BalloonForce"
	case ImageEdgeForce:
		return "ImageEdgeForce"
	case ImplicitSurfaceDistance:
		return "ImplicitSurfaceDistance"
	case ImplicitSurfaceSpringForce:
		return "ImplicitSurfaceSpringForce"

	// Internal point-set forces
	case MetricDistortion:
		return "MetricDistortion"
	case Stretching:
		return "Stretching"
	case Curvature:
		return "Curvature"
	case QuadraticCurvature:
		return "QuadraticCurvature"
	case NonSelfIntersection:
		return "NSI"
	case RepulsiveForce:
		return "Repulsion"
	case InflationForce:
		return "Inflation"
	case SpringForce:
		return "Spring"

	// Transformation constraints
	case BendingEnergy:
		return "BE"
	case VolumePreservation:
		return "VP"
	case TopologyPreservation:
		return "TP"
	case Sparsity:
		return "Sparsity"
	case L0Norm:
		return "L0"
	case L1Norm:
		return "L1"
	case L2Norm:
		return "L2"
	case SqLogDetJac:
		return "SqLogDetJac"
	case MinDetJac:
		return "MinDetJac"

	default:
		return "Unknown"
	}
}

// Alias tables of exact, case-sensitive historical synonyms, one per
// category. Only names that differ from the canonical code belong here;
// canonical codes resolve through the fallback scan.
var (
	similarityAliases = map[string]Measure{
		"NCC": LNCC,
		"LCC": LNCC,
	}

	pointSetDistanceAliases = map[string]Measure{
		"Fiducial Registration Error": FRE,
		"Fiducial registration error": FRE,
		"Fiducial Error":              FRE,
		"Fiducial error":              FRE,
		"Landmark Registration Error": FRE,
		"Landmark registration error": FRE,
		"Landmark Error":              FRE,
		"Landmark error":              FRE,

		"Point Correspondence Distance": CorrespondenceDistance,
		"Point correspondence distance": CorrespondenceDistance,
		"Correspondence Distance":       CorrespondenceDistance,
		"Correspondence distance":       CorrespondenceDistance,

		"Currents Distance": CurrentsDistance,
		"Currents distance": CurrentsDistance,

		"Varifold Distance": VarifoldDistance,
		"Varifold distance": VarifoldDistance,
	}

	externalForceAliases = map[string]Measure{
		"EdgeForce": ImageEdgeForce,
	}

	internalForceAliases = map[string]Measure{
		"EdgeLength":          Stretching,
		"MetricDistortion":    MetricDistortion,
		"Bending":             Curvature,
		"SurfaceBending":      Curvature,
		"SurfaceCurvature":    Curvature,
		"RepulsiveForce":      RepulsiveForce,
		"NonSelfIntersection": NonSelfIntersection,
		"InflationForce":      InflationForce,
		"SurfaceInflation":    InflationForce,
	}

	constraintAliases = map[string]Measure{
		"JAC":    SqLogDetJac,
		"MinJac": MinDetJac,
	}
)

// aliasTables fixes the alias-resolution order: similarity, point-set
// distance, external force, internal force, constraint. The order is
// policy inherited from earlier toolkit generations; keep it stable.
var aliasTables = []map[string]Measure{
	similarityAliases,
	pointSetDistanceAliases,
	externalForceAliases,
	internalForceAliases,
	constraintAliases,
}

// Parse resolves text to a Measure.
//
// Resolution stops at the first phase that produces a value:
//
//  1. The per-category alias tables, in aliasTables order.
//  2. A reverse scan over canonical names: candidates are walked from the
//     highest selectable value down, and the first whose String equals
//     text wins. Should two values ever share a canonical code, the
//     higher-valued (newer) one is preferred by construction of the scan.
//  3. Otherwise resolution fails with (Unknown, ErrUnknownMeasure).
//
// Matching is exact and case-sensitive in every phase. The literal input
// "Unknown" resolves nothing: it is the rendering of non-selectable
// values, not a canonical code.
func Parse(text string) (Measure, error) {
	for _, aliases := range aliasTables {
		if m, ok := aliases[text]; ok {
			return m, nil
		}
	}

	for m := measureCount - 1; m > Unknown; m-- {
		// Sentinels render as "Unknown" and are never selectable.
		if !m.IsValid() {
			continue
		}
		if m.String() == text {
			return m, nil
		}
	}

	return Unknown, ErrUnknownMeasure
}
