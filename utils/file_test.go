package utils

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestResolveFile(t *testing.T) {
	_, err := os.Stat(ResolveFile("utils/file.go"))
	test.That(t, err, test.ShouldBeNil)
}

func TestJoinRelative(t *testing.T) {
	test.That(t, JoinRelative("/opt/relaxed_ik", "urdfs/ur5.urdf"), test.ShouldEqual, filepath.Join("/opt/relaxed_ik", "urdfs", "ur5.urdf"))
	test.That(t, JoinRelative("/opt/relaxed_ik", "/abs/ur5.urdf"), test.ShouldEqual, "/abs/ur5.urdf")
	test.That(t, JoinRelative("", "ur5.urdf"), test.ShouldEqual, "ur5.urdf")
	test.That(t, JoinRelative("/opt/relaxed_ik", ""), test.ShouldEqual, "")
}
