package kinconfig

import "github.com/invopop/jsonschema"

// infoFileDocument mirrors the on-disk layout of an info file for schema generation.
type infoFileDocument struct {
	URDFFileName             string         `json:"urdf_file_name"`
	FixedFrame               string         `json:"fixed_frame"`
	JointNames               [][]string     `json:"joint_names"`
	JointOrdering            []string       `json:"joint_ordering"`
	EEFixedJoints            []string       `json:"ee_fixed_joints"`
	StartingConfig           []float64      `json:"starting_config"`
	CollisionFileName        string         `json:"collision_file_name"`
	CollisionNNFile          string         `json:"collision_nn_file"`
	PathToSrc                string         `json:"path_to_src"`
	AxisTypes                [][]string     `json:"axis_types"`
	VelocityLimits           []float64      `json:"velocity_limits"`
	JointLimits              [][2]float64   `json:"joint_limits"`
	Displacements            [][][3]float64 `json:"displacements"`
	DispOffsets              [][3]float64   `json:"disp_offsets"`
	JointTypes               [][]string     `json:"joint_types"`
	JointStateDefineFuncFile string         `json:"joint_state_define_func_file"`
}

// JSONSchema returns a JSON schema describing an info file in the form MarshalConfig writes it,
// for editors and validation tooling. Every key is required; unknown keys are allowed since
// loading ignores them. Limit pairs and vectors are described with their exact lengths, so the
// schema is as strict as WithStrictArity.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}
	return r.Reflect(&infoFileDocument{})
}
