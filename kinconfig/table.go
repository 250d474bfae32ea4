package kinconfig

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
)

// String prints a table of every chain's joints with their axis, type, displacement and, where the
// joint is in the solver ordering, its limits. Each chain ends with its fixed end effector joint.
func (cfg *RobotKinematicsConfig) String() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s (fixed frame %s)", cfg.URDFFileName, cfg.FixedFrame))
	t.AppendHeader(table.Row{"Chain", "#", "Joint", "Type", "Axis", "Displacement", "Limits", "Start"})
	for c, names := range cfg.JointNames {
		for j, name := range names {
			limits, start := "", ""
			if idx := cfg.JointIndex(name); idx >= 0 {
				if idx < len(cfg.JointLimits) {
					limits = fmt.Sprintf("[%g, %g]", cfg.JointLimits[idx].Min, cfg.JointLimits[idx].Max)
				}
				if idx < len(cfg.StartingConfig) {
					start = fmt.Sprintf("%g", cfg.StartingConfig[idx])
				}
			}
			t.AppendRow(table.Row{
				c,
				j,
				name,
				cell(cfg.JointTypes, c, j),
				cell(cfg.AxisTypes, c, j),
				vectorString(cellVector(cfg.Displacements, c, j)),
				limits,
				start,
			})
		}
		ee := ""
		if c < len(cfg.EEFixedJoints) {
			ee = cfg.EEFixedJoints[c]
		}
		var offset *r3.Vector
		if c < len(cfg.DispOffsets) {
			offset = &cfg.DispOffsets[c]
		}
		t.AppendRow(table.Row{c, "ee", ee, "fixed", "", vectorString(offset), "", ""})
		t.AppendSeparator()
	}
	return t.Render()
}

func cell(chains [][]string, c, j int) string {
	if c < len(chains) && j < len(chains[c]) {
		return chains[c][j]
	}
	return ""
}

func cellVector(chains [][]r3.Vector, c, j int) *r3.Vector {
	if c < len(chains) && j < len(chains[c]) {
		return &chains[c][j]
	}
	return nil
}

func vectorString(v *r3.Vector) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("X:%g, Y:%g, Z:%g", v.X, v.Y, v.Z)
}
