package universe

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

func TestDemoInheritance(t *testing.T) {
	d := NewDemo()
	part, ok := d.BuildRobloxClasses()["Part"]
	if !ok {
		t.Fatal("expected Part class")
	}
	instance := d.BuildRobloxClasses()["Instance"]
	if !part.Inherits(instance) {
		t.Error("expected Part to inherit Instance")
	}
}

func TestDemoCommonChildType(t *testing.T) {
	d := NewDemo()
	workspace := d.BuildRobloxClasses()["Workspace"]
	getSuper := func(c *types.Class) *types.Class { return c.Super }
	name, ok := d.CommonChildType(workspace, "Terrain", getSuper)
	if !ok || name != "Terrain" {
		t.Errorf("expected Terrain common child, got %q ok=%v", name, ok)
	}
}

func TestDemoEnums(t *testing.T) {
	d := NewDemo()
	if _, ok := d.BuildEnums()["Material"]; !ok {
		t.Error("expected Material enum")
	}
}
