// Package kinconfig loads the kinematics info file that describes a robot's kinematic chains for
// an IK solver: which joints make up each chain, in what order the solver indexes them, their
// limits, their displacements, and the auxiliary files (URDF, collision model, learned collision
// network) the solver needs at startup.
//
// An info file is a YAML mapping with exactly these keys, all required:
//
//	urdf_file_name: ur5.urdf
//	fixed_frame: base_link
//	joint_names: [[shoulder_pan_joint, shoulder_lift_joint]]
//	joint_ordering: [shoulder_pan_joint, shoulder_lift_joint]
//	ee_fixed_joints: [ee_fixed_joint]
//	starting_config: [0.0, -1.57]
//	collision_file_name: collision_ur5.yaml
//	collision_nn_file: ur5_nn
//	path_to_src: /opt/relaxed_ik/src
//	axis_types: [[z, y]]
//	velocity_limits: [3.15, 3.15]
//	joint_limits: [[-6.28, 6.28], [-6.28, 6.28]]
//	displacements: [[[0.0, 0.0, 0.089], [0.0, 0.136, 0.0]]]
//	disp_offsets: [[0.0, 0.0, 0.0]]
//	joint_types: [[revolute, revolute]]
//	joint_state_define_func_file: ur5_joint_state_define
package kinconfig

import (
	"github.com/golang/geo/r3"

	"go.viam.com/relaxedik/utils"
)

// Limit represents the lower and upper bound of a single joint.
type Limit struct {
	Min float64
	Max float64
}

// RobotKinematicsConfig is the typed contents of an info file. Values returned by this package are
// freshly allocated and are never modified after loading.
type RobotKinematicsConfig struct {
	URDFFileName      string
	FixedFrame        string
	JointNames        [][]string
	JointOrdering     []string
	EEFixedJoints     []string
	StartingConfig    []float64
	CollisionFileName string
	CollisionNNFile   string
	PathToSrc         string
	AxisTypes         [][]string
	VelocityLimits    []float64
	JointLimits       []Limit
	// Displacements holds one vector per joint per chain, parallel to JointNames.
	Displacements [][]r3.Vector
	// DispOffsets holds one base offset per chain.
	DispOffsets              []r3.Vector
	JointTypes               [][]string
	JointStateDefineFuncFile string
}

// NumChains returns the number of kinematic chains.
func (cfg *RobotKinematicsConfig) NumChains() int {
	return len(cfg.JointNames)
}

// NumJoints returns the number of joints in the solver's canonical ordering.
func (cfg *RobotKinematicsConfig) NumJoints() int {
	return len(cfg.JointOrdering)
}

// JointIndex returns the position of the named joint in JointOrdering, or -1.
func (cfg *RobotKinematicsConfig) JointIndex(name string) int {
	for i, n := range cfg.JointOrdering {
		if n == name {
			return i
		}
	}
	return -1
}

// ResolvePath resolves a file reference from the info file against PathToSrc.
func (cfg *RobotKinematicsConfig) ResolvePath(name string) string {
	return utils.JoinRelative(cfg.PathToSrc, name)
}

// URDFPath returns the URDF file reference resolved against PathToSrc.
func (cfg *RobotKinematicsConfig) URDFPath() string {
	return cfg.ResolvePath(cfg.URDFFileName)
}

// CollisionFilePath returns the collision file reference resolved against PathToSrc.
func (cfg *RobotKinematicsConfig) CollisionFilePath() string {
	return cfg.ResolvePath(cfg.CollisionFileName)
}

// CollisionNNPath returns the collision network file reference resolved against PathToSrc.
func (cfg *RobotKinematicsConfig) CollisionNNPath() string {
	return cfg.ResolvePath(cfg.CollisionNNFile)
}

// JointStateDefineFuncPath returns the joint state definition file reference resolved against PathToSrc.
func (cfg *RobotKinematicsConfig) JointStateDefineFuncPath() string {
	return cfg.ResolvePath(cfg.JointStateDefineFuncFile)
}
