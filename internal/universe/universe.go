// Package universe documents the pluggable type-universe interface the
// checker consumes (spec §6): the bulk Roblox class/enum/stdlib definition
// tables are an external collaborator's responsibility, not the core's.
// This package defines the interface those tables must satisfy and ships a
// small demo implementation — a handful of classes and enums sufficient to
// exercise the checker's special forms (Instance.new, GetService, IsA
// narrowing, event :Wait()) in its own tests.
package universe

import "github.com/0neShot101/rbxdev-ls-sub001/internal/types"

// Universe is the interface a caller's bulk Roblox/stdlib tables satisfy.
// The checker only ever reads from a Universe during a single check; it is
// conceptually read-only and safe to share across concurrent checks
// provided the caller doesn't mutate it mid-check (spec §5 thread safety).
type Universe interface {
	// BuildStdlib returns the standard-library globals (print, math, string,
	// table, task, ...). The checker merges this into the environment's
	// global scope alongside internal/env's minimal bundle seed.
	BuildStdlib() map[string]types.Type

	// BuildRobloxClasses returns every known Roblox class keyed by name,
	// each carrying its superclass pointer already wired (classes earlier
	// in dependency order than their subclasses, or resolved lazily).
	BuildRobloxClasses() map[string]*types.Class

	// BuildEnums returns every known Enum.* table keyed by name.
	BuildEnums() map[string]*types.Enum

	// CommonChildType implements the structural "common children" lookup
	// consulted during member access on a class value that doesn't itself
	// define the accessed name: given a parent class, a candidate child
	// name, and a callback to walk to a superclass, it returns the class
	// name of the instance that access would yield, if any Roblox instance
	// commonly parented under `parent` is named `childName`.
	CommonChildType(parent *types.Class, childName string, getSuperclass func(*types.Class) *types.Class) (string, bool)
}

// Demo is a minimal literal Universe: a small Instance/Part/Workspace-style
// class hierarchy, a few enums, and three Roblox globals (game, workspace,
// script) as its stdlib map; Roblox datatypes such as Vector3 and CFrame
// appear only as named references — enough to drive the checker's own tests
// without pretending to be the real bulk Roblox API tables (spec §1 names
// those as an external collaborator's job).
type Demo struct {
	classes map[string]*types.Class
	enums   map[string]*types.Enum
	common  map[string]map[string]string // parent class name -> child name -> child class name
}

// NewDemo builds the demo universe once; callers typically construct one
// and reuse it across checks.
func NewDemo() *Demo {
	d := &Demo{
		classes: make(map[string]*types.Class),
		enums:   make(map[string]*types.Enum),
		common:  make(map[string]map[string]string),
	}
	d.buildClasses()
	d.buildEnums()
	d.buildCommonChildren()
	return d
}

func (d *Demo) BuildStdlib() map[string]types.Type {
	return map[string]types.Type{
		"game":      types.Reference{Name: "DataModel"},
		"workspace": types.Reference{Name: "Workspace"},
		"script":    types.Reference{Name: "LuaSourceContainer"},
	}
}

func (d *Demo) BuildRobloxClasses() map[string]*types.Class { return d.classes }
func (d *Demo) BuildEnums() map[string]*types.Enum          { return d.enums }

func (d *Demo) CommonChildType(parent *types.Class, childName string, getSuperclass func(*types.Class) *types.Class) (string, bool) {
	for cur := parent; cur != nil; cur = getSuperclass(cur) {
		if byChild, ok := d.common[cur.Name]; ok {
			if className, ok := byChild[childName]; ok {
				return className, true
			}
		}
	}
	return "", false
}

func signal(paramTypes ...types.Type) *types.Table {
	params := make([]types.FuncParam, len(paramTypes))
	for i, t := range paramTypes {
		params[i] = types.FuncParam{Type: t}
	}
	conn := types.NewTable()
	conn.Set("Disconnect", types.Property{Type: types.Function{Return: types.Nil}})
	conn.Set("Connected", types.Property{Type: types.Boolean})

	wait := types.Function{Return: types.Any}
	if len(paramTypes) == 1 {
		wait.Return = paramTypes[0]
	} else if len(paramTypes) > 1 {
		wait.Return = types.NewUnion(paramTypes...)
	}

	sig := types.NewTable()
	sig.Set("Connect", types.Property{Type: types.Function{
		Params: []types.FuncParam{{Name: "callback", Type: types.Function{Params: params, Return: types.Nil}}},
		Return: conn,
	}})
	sig.Set("Wait", types.Property{Type: wait})
	sig.Set("Once", types.Property{Type: types.Function{
		Params: []types.FuncParam{{Name: "callback", Type: types.Function{Params: params, Return: types.Nil}}},
		Return: conn,
	}})
	return sig
}

func (d *Demo) buildClasses() {
	instance := types.NewClass("Instance")
	instance.Props["Name"] = types.Property{Type: types.String}
	instance.Props["ClassName"] = types.Property{Type: types.String, Readonly: true}
	instance.Props["Parent"] = types.Property{Type: types.NewOptional(types.Reference{Name: "Instance"})}
	instance.PropOrder = []string{"Name", "ClassName", "Parent"}
	instance.Methods["Destroy"] = &types.Function{Return: types.Nil}
	instance.Methods["Clone"] = &types.Function{Return: types.Reference{Name: "Instance"}}
	instance.Methods["IsA"] = &types.Function{Params: []types.FuncParam{{Name: "className", Type: types.String}}, Return: types.Boolean}
	instance.Methods["FindFirstChild"] = &types.Function{
		Params: []types.FuncParam{{Name: "name", Type: types.String}, {Name: "recursive", Type: types.Boolean, Optional: true}},
		Return: types.NewOptional(types.Reference{Name: "Instance"}),
	}
	instance.Methods["FindFirstChildOfClass"] = &types.Function{
		Params: []types.FuncParam{{Name: "className", Type: types.String}},
		Return: types.NewOptional(types.Reference{Name: "Instance"}),
	}
	instance.Methods["WaitForChild"] = &types.Function{
		Params: []types.FuncParam{{Name: "name", Type: types.String}, {Name: "timeout", Type: types.Number, Optional: true}},
		Return: types.Reference{Name: "Instance"},
	}
	instance.Methods["GetChildren"] = &types.Function{Return: arrayOf(types.Reference{Name: "Instance"})}
	instance.MethodOrder = []string{"Destroy", "Clone", "IsA", "FindFirstChild", "FindFirstChildOfClass", "WaitForChild", "GetChildren"}
	instance.Events["Changed"] = signal(types.String)
	instance.Events["ChildAdded"] = signal(types.Reference{Name: "Instance"})
	instance.Events["ChildRemoved"] = signal(types.Reference{Name: "Instance"})
	d.classes["Instance"] = instance

	lsc := types.NewClass("LuaSourceContainer")
	lsc.Super = instance
	d.classes["LuaSourceContainer"] = lsc

	basePart := types.NewClass("BasePart")
	basePart.Super = instance
	basePart.Props["Position"] = types.Property{Type: types.Reference{Name: "Vector3"}}
	basePart.Props["Size"] = types.Property{Type: types.Reference{Name: "Vector3"}}
	basePart.Props["CFrame"] = types.Property{Type: types.Reference{Name: "CFrame"}}
	basePart.Props["Anchored"] = types.Property{Type: types.Boolean}
	basePart.Props["Transparency"] = types.Property{Type: types.Number}
	basePart.Props["BrickColor"] = types.Property{Type: types.Reference{Name: "BrickColor"}}
	basePart.PropOrder = []string{"Position", "Size", "CFrame", "Anchored", "Transparency", "BrickColor"}
	basePart.Methods["GetMass"] = &types.Function{Return: types.Number}
	basePart.MethodOrder = []string{"GetMass"}
	basePart.Events["Touched"] = signal(types.Reference{Name: "BasePart"})
	d.classes["BasePart"] = basePart

	part := types.NewClass("Part")
	part.Super = basePart
	part.Props["Shape"] = types.Property{Type: types.Reference{Name: "Enum", Module: "", TypeArgs: nil}}
	part.PropOrder = []string{"Shape"}
	d.classes["Part"] = part

	meshPart := types.NewClass("MeshPart")
	meshPart.Super = basePart
	meshPart.Props["MeshId"] = types.Property{Type: types.String}
	meshPart.PropOrder = []string{"MeshId"}
	d.classes["MeshPart"] = meshPart

	model := types.NewClass("Model")
	model.Super = instance
	model.Methods["GetBoundingBox"] = &types.Function{Return: types.Reference{Name: "CFrame"}}
	model.MethodOrder = []string{"GetBoundingBox"}
	d.classes["Model"] = model

	humanoid := types.NewClass("Humanoid")
	humanoid.Super = instance
	humanoid.Props["Health"] = types.Property{Type: types.Number}
	humanoid.Props["WalkSpeed"] = types.Property{Type: types.Number}
	humanoid.PropOrder = []string{"Health", "WalkSpeed"}
	humanoid.Events["Died"] = signal()
	d.classes["Humanoid"] = humanoid

	service := types.NewClass("ServiceProvider")
	service.Super = instance
	service.Methods["GetService"] = &types.Function{
		Params: []types.FuncParam{{Name: "className", Type: types.String}},
		Return: types.Reference{Name: "Instance"},
	}
	service.MethodOrder = []string{"GetService"}
	d.classes["ServiceProvider"] = service

	dataModel := types.NewClass("DataModel")
	dataModel.Super = service
	d.classes["DataModel"] = dataModel

	workspace := types.NewClass("Workspace")
	workspace.Super = model
	workspace.Props["Gravity"] = types.Property{Type: types.Number}
	workspace.PropOrder = []string{"Gravity"}
	d.classes["Workspace"] = workspace

	players := types.NewClass("Players")
	players.Super = service
	players.Methods["GetPlayers"] = &types.Function{Return: arrayOf(types.Reference{Name: "Player"})}
	players.MethodOrder = []string{"GetPlayers"}
	players.Events["PlayerAdded"] = signal(types.Reference{Name: "Player"})
	d.classes["Players"] = players

	player := types.NewClass("Player")
	player.Super = instance
	player.Props["UserId"] = types.Property{Type: types.Number, Readonly: true}
	player.Props["Character"] = types.Property{Type: types.NewOptional(types.Reference{Name: "Model"})}
	player.PropOrder = []string{"UserId", "Character"}
	d.classes["Player"] = player

	runService := types.NewClass("RunService")
	runService.Super = service
	runService.Events["Heartbeat"] = signal(types.Number)
	runService.Events["Stepped"] = signal(types.Number, types.Number)
	d.classes["RunService"] = runService
}

func arrayOf(elem types.Type) *types.Table {
	t := types.NewTable()
	t.Array = true
	t.ArrayElem = elem
	return t
}

func (d *Demo) buildEnums() {
	material := types.NewEnum("Material")
	material.Items["Plastic"] = types.Reference{Name: "EnumItem", Module: "Material"}
	material.Items["Wood"] = types.Reference{Name: "EnumItem", Module: "Material"}
	material.Items["Metal"] = types.Reference{Name: "EnumItem", Module: "Material"}
	d.enums["Material"] = material

	partType := types.NewEnum("PartType")
	partType.Items["Ball"] = types.Reference{Name: "EnumItem", Module: "PartType"}
	partType.Items["Block"] = types.Reference{Name: "EnumItem", Module: "PartType"}
	partType.Items["Cylinder"] = types.Reference{Name: "EnumItem", Module: "PartType"}
	d.enums["PartType"] = partType

	keyCode := types.NewEnum("KeyCode")
	keyCode.Items["Space"] = types.Reference{Name: "EnumItem", Module: "KeyCode"}
	keyCode.Items["W"] = types.Reference{Name: "EnumItem", Module: "KeyCode"}
	d.enums["KeyCode"] = keyCode
}

// buildCommonChildren seeds a couple of parent -> childName -> className
// entries mirroring the real Roblox "instances commonly parented here"
// tables (e.g. Workspace usually has a Terrain; a Player usually has
// PlayerGui and Backpack children once a character loads).
func (d *Demo) buildCommonChildren() {
	d.common["Workspace"] = map[string]string{
		"Terrain":    "Terrain",
		"CurrentCamera": "Camera",
	}
	d.common["Player"] = map[string]string{
		"PlayerGui":     "PlayerGui",
		"Backpack":      "Backpack",
		"StarterGear":   "StarterGear",
		"PlayerScripts": "PlayerScripts",
	}
	terrain := types.NewClass("Terrain")
	terrain.Super = d.classes["BasePart"]
	d.classes["Terrain"] = terrain
	camera := types.NewClass("Camera")
	camera.Super = d.classes["Instance"]
	d.classes["Camera"] = camera
	for _, name := range []string{"PlayerGui", "Backpack", "StarterGear", "PlayerScripts"} {
		c := types.NewClass(name)
		c.Super = d.classes["Instance"]
		d.classes[name] = c
	}
}
