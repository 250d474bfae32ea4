package kinconfig

import (
	"strings"

	"github.com/pkg/errors"
)

// minimalFields is the smallest valid info file: one chain with one joint.
var minimalFields = [][2]string{
	{"urdf_file_name", "robot.urdf"},
	{"fixed_frame", "base_link"},
	{"joint_names", `[["j1"]]`},
	{"joint_ordering", `["j1"]`},
	{"ee_fixed_joints", `["ee_fixed_joint"]`},
	{"starting_config", "[0.0]"},
	{"collision_file_name", "collision.yaml"},
	{"collision_nn_file", "robot_nn"},
	{"path_to_src", "/opt/relaxed_ik/src"},
	{"axis_types", `[["z"]]`},
	{"velocity_limits", "[1.5]"},
	{"joint_limits", "[[-1.0, 1.0]]"},
	{"displacements", "[[[0.0, 0.0, 0.1]]]"},
	{"disp_offsets", "[[0.0,0.0,0.0]]"},
	{"joint_types", `[["revolute"]]`},
	{"joint_state_define_func_file", "joint_state_define"},
}

// infoDoc renders minimalFields with the given keys replaced, or removed when the replacement
// is the empty string.
func infoDoc(overrides map[string]string) []byte {
	var sb strings.Builder
	for _, kv := range minimalFields {
		value := kv[1]
		if o, ok := overrides[kv[0]]; ok {
			if o == "" {
				continue
			}
			value = o
		}
		sb.WriteString(kv[0] + ": " + value + "\n")
	}
	return []byte(sb.String())
}

func asSchemaError(err error) *SchemaError {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr
	}
	return nil
}
