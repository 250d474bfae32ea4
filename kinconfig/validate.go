package kinconfig

import (
	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Validate checks that fields describing the same chains and joints agree with each other:
// the per-joint collections are shaped like joint_names, there is one end effector and one
// offset per chain, the joint-indexed lists have one entry per joint in joint_ordering, every
// ordered joint is named in some chain, and every limit has lower <= upper.
// Loading does not call Validate unless WithValidation is given.
func (cfg *RobotKinematicsConfig) Validate() error {
	var errs error
	chains := cfg.NumChains()

	errs = multierr.Append(errs, checkChainShape("axis_types", cfg.JointNames, lo.Map(cfg.AxisTypes, lenOf[string])))
	errs = multierr.Append(errs, checkChainShape("joint_types", cfg.JointNames, lo.Map(cfg.JointTypes, lenOf[string])))
	errs = multierr.Append(errs, checkChainShape("displacements", cfg.JointNames, lo.Map(cfg.Displacements, lenOf[r3.Vector])))

	if len(cfg.EEFixedJoints) != chains {
		errs = multierr.Append(errs, NewValidationError("ee_fixed_joints",
			"has %d entries but there are %d chains", len(cfg.EEFixedJoints), chains))
	}
	if len(cfg.DispOffsets) != chains {
		errs = multierr.Append(errs, NewValidationError("disp_offsets",
			"has %d entries but there are %d chains", len(cfg.DispOffsets), chains))
	}

	joints := cfg.NumJoints()
	for _, perJoint := range []struct {
		field string
		n     int
	}{
		{"starting_config", len(cfg.StartingConfig)},
		{"velocity_limits", len(cfg.VelocityLimits)},
		{"joint_limits", len(cfg.JointLimits)},
	} {
		if perJoint.n != joints {
			errs = multierr.Append(errs, NewValidationError(perJoint.field,
				"has %d entries but joint_ordering has %d joints", perJoint.n, joints))
		}
	}

	if dups := lo.FindDuplicates(cfg.JointOrdering); len(dups) > 0 {
		errs = multierr.Append(errs, NewValidationError("joint_ordering", "lists joints more than once: %v", dups))
	}
	if missing, _ := lo.Difference(cfg.JointOrdering, lo.Flatten(cfg.JointNames)); len(missing) > 0 {
		errs = multierr.Append(errs, NewValidationError("joint_ordering", "names joints not in any chain: %v", missing))
	}

	for i, l := range cfg.JointLimits {
		if l.Min > l.Max {
			errs = multierr.Append(errs, NewValidationError("joint_limits",
				"joint %d has lower limit %v above upper limit %v", i, l.Min, l.Max))
		}
	}
	for i, v := range cfg.VelocityLimits {
		if v < 0 {
			errs = multierr.Append(errs, NewValidationError("velocity_limits", "joint %d has negative limit %v", i, v))
		}
	}
	return errs
}

// checkChainShape compares the per-chain lengths of a field against joint_names.
func checkChainShape(field string, names [][]string, lengths []int) error {
	if len(lengths) != len(names) {
		return NewValidationError(field, "has %d chains but joint_names has %d", len(lengths), len(names))
	}
	var errs error
	for i, n := range lengths {
		if n != len(names[i]) {
			errs = multierr.Append(errs, NewValidationError(field,
				"chain %d has %d entries but joint_names has %d", i, n, len(names[i])))
		}
	}
	return errs
}

func lenOf[T any](chain []T, _ int) int {
	return len(chain)
}
