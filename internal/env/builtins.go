package env

import (
	"sort"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

// Bundle names the caller-selectable built-in groups (spec §4.4: "the
// caller chooses which bundles to include via configuration").
type Bundle int

const (
	BundleStdlib Bundle = iota
	BundleRobloxDatatypes
	BundleExecutorExtensions
)

// PopulateBuiltins seeds the environment's global scope with the requested
// bundles. The stdlib bundle is the Luau standard globals; the other two
// bundles are small literal instances sufficient for the core's own tests —
// the bulk Roblox class/enum tables are supplied by the caller through a
// universe (internal/universe), per spec §1/§6.
func (e *Environment) PopulateBuiltins(bundles ...Bundle) {
	for _, b := range bundles {
		switch b {
		case BundleStdlib:
			e.populateStdlib()
		case BundleRobloxDatatypes:
			e.populateRobloxDatatypes()
		case BundleExecutorExtensions:
			e.populateExecutorExtensions()
		}
	}
}

func fn(ret types.Type, params ...types.FuncParam) types.Type {
	return types.Function{Params: params, Return: ret}
}

func variadicFn(ret types.Type) types.Type {
	return types.Function{Variadic: true, VariadicOf: types.Any, Return: ret}
}

func (e *Environment) defineGlobal(name string, t types.Type) {
	e.DefineSymbol(name, t, SymGlobal, false, "")
}

// populateStdlib seeds the Luau standard globals and the standard-library
// tables (math, string, table, task, os, coroutine, bit32, utf8, buffer,
// debug). Each stdlib table is a minimal structural Table carrying its most
// commonly used members — a full table is the type universe's job to
// extend, same as the Roblox class tables.
func (e *Environment) populateStdlib() {
	e.defineGlobal("print", variadicFn(types.Nil))
	e.defineGlobal("warn", variadicFn(types.Nil))
	e.defineGlobal("error", fn(types.Never, types.FuncParam{Name: "message", Type: types.Any, Optional: true}))
	e.defineGlobal("assert", types.Function{
		Params:   []types.FuncParam{{Name: "value", Type: types.Any}, {Name: "message", Type: types.String, Optional: true}},
		Variadic: true, VariadicOf: types.Any, Return: types.Any,
	})
	e.defineGlobal("type", fn(types.String, types.FuncParam{Name: "value", Type: types.Any}))
	e.defineGlobal("typeof", fn(types.String, types.FuncParam{Name: "value", Type: types.Any}))
	e.defineGlobal("tostring", fn(types.String, types.FuncParam{Name: "value", Type: types.Any}))
	e.defineGlobal("tonumber", fn(types.NewOptional(types.Number), types.FuncParam{Name: "value", Type: types.Any}))
	e.defineGlobal("pcall", variadicFn(types.Any))
	e.defineGlobal("xpcall", variadicFn(types.Any))
	e.defineGlobal("select", variadicFn(types.Any))
	e.defineGlobal("pairs", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}))
	e.defineGlobal("ipairs", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}))
	e.defineGlobal("next", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}))
	e.defineGlobal("unpack", variadicFn(types.Any))
	e.defineGlobal("rawget", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}, types.FuncParam{Name: "k", Type: types.Any}))
	e.defineGlobal("rawset", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}, types.FuncParam{Name: "k", Type: types.Any}, types.FuncParam{Name: "v", Type: types.Any}))
	e.defineGlobal("rawequal", fn(types.Boolean, types.FuncParam{Name: "a", Type: types.Any}, types.FuncParam{Name: "b", Type: types.Any}))
	e.defineGlobal("rawlen", fn(types.Number, types.FuncParam{Name: "v", Type: types.Any}))
	e.defineGlobal("setmetatable", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}, types.FuncParam{Name: "mt", Type: types.Any}))
	e.defineGlobal("getmetatable", fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}))
	e.defineGlobal("require", fn(types.Any, types.FuncParam{Name: "target", Type: types.Any}))
	e.defineGlobal("getfenv", variadicFn(types.Any))
	e.defineGlobal("setfenv", variadicFn(types.Any))
	e.defineGlobal("newproxy", variadicFn(types.Any))
	e.defineGlobal("_G", types.NewTable())
	e.defineGlobal("_VERSION", types.String)
	e.defineGlobal("shared", types.NewTable())

	e.defineGlobal("math", mathTable())
	e.defineGlobal("string", stringTable())
	e.defineGlobal("table", tableTable())
	e.defineGlobal("task", taskTable())
	e.defineGlobal("os", osTable())
	e.defineGlobal("coroutine", simpleTable(map[string]types.Type{
		"create": fn(types.Thread, types.FuncParam{Name: "f", Type: types.Any}),
		"resume": variadicFn(types.Any),
		"yield":  variadicFn(types.Any),
		"status": fn(types.String, types.FuncParam{Name: "co", Type: types.Thread}),
		"wrap":   fn(types.Any, types.FuncParam{Name: "f", Type: types.Any}),
	}))
	e.defineGlobal("bit32", simpleTable(map[string]types.Type{
		"band": variadicFn(types.Number), "bor": variadicFn(types.Number), "bxor": variadicFn(types.Number),
		"bnot": fn(types.Number, types.FuncParam{Name: "n", Type: types.Number}),
		"lshift": fn(types.Number, types.FuncParam{Name: "n", Type: types.Number}, types.FuncParam{Name: "by", Type: types.Number}),
		"rshift": fn(types.Number, types.FuncParam{Name: "n", Type: types.Number}, types.FuncParam{Name: "by", Type: types.Number}),
	}))
	e.defineGlobal("utf8", simpleTable(map[string]types.Type{
		"char": variadicFn(types.String),
		"len":  fn(types.NewOptional(types.Number), types.FuncParam{Name: "s", Type: types.String}),
		"codepoint": variadicFn(types.Number),
	}))
	e.defineGlobal("buffer", simpleTable(map[string]types.Type{
		"create": fn(types.Buffer, types.FuncParam{Name: "size", Type: types.Number}),
		"len":    fn(types.Number, types.FuncParam{Name: "b", Type: types.Buffer}),
	}))
	e.defineGlobal("debug", simpleTable(map[string]types.Type{
		"traceback": variadicFn(types.String),
		"info":      variadicFn(types.Any),
	}))
}

// simpleTable builds a structural table from a name->type map. Members are
// inserted in sorted name order, so Names is stable across runs.
func simpleTable(members map[string]types.Type) *types.Table {
	t := types.NewTable()
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.Set(name, types.Property{Type: members[name]})
	}
	return t
}

func mathTable() *types.Table {
	return simpleTable(map[string]types.Type{
		"abs": fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"floor": fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"ceil":  fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"sqrt":  fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"sin":   fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"cos":   fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"tan":   fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"atan":  fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"atan2": fn(types.Number, types.FuncParam{Name: "y", Type: types.Number}, types.FuncParam{Name: "x", Type: types.Number}),
		"max":   variadicFn(types.Number),
		"min":   variadicFn(types.Number),
		"random":     variadicFn(types.Number),
		"randomseed": fn(types.Nil, types.FuncParam{Name: "seed", Type: types.Number}),
		"huge":       types.Number,
		"pi":         types.Number,
		"clamp":      fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}, types.FuncParam{Name: "min", Type: types.Number}, types.FuncParam{Name: "max", Type: types.Number}),
		"sign":       fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"round":      fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"log":        variadicFn(types.Number),
		"log10":      fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}),
		"pow":        fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}, types.FuncParam{Name: "y", Type: types.Number}),
		"fmod":       fn(types.Number, types.FuncParam{Name: "x", Type: types.Number}, types.FuncParam{Name: "y", Type: types.Number}),
		"noise":      variadicFn(types.Number),
	})
}

func stringTable() *types.Table {
	return simpleTable(map[string]types.Type{
		"byte":    variadicFn(types.Number),
		"char":    variadicFn(types.String),
		"find":    variadicFn(types.Any),
		"format":  variadicFn(types.String),
		"gmatch":  fn(types.Any, types.FuncParam{Name: "s", Type: types.String}, types.FuncParam{Name: "pattern", Type: types.String}),
		"gsub":    variadicFn(types.String),
		"len":     fn(types.Number, types.FuncParam{Name: "s", Type: types.String}),
		"lower":   fn(types.String, types.FuncParam{Name: "s", Type: types.String}),
		"upper":   fn(types.String, types.FuncParam{Name: "s", Type: types.String}),
		"match":   variadicFn(types.Any),
		"rep":     fn(types.String, types.FuncParam{Name: "s", Type: types.String}, types.FuncParam{Name: "n", Type: types.Number}),
		"reverse": fn(types.String, types.FuncParam{Name: "s", Type: types.String}),
		"split":   variadicFn(types.Any),
		"sub":     variadicFn(types.String),
		"pack":    variadicFn(types.String),
		"unpack":  variadicFn(types.Any),
		"packsize": fn(types.Number, types.FuncParam{Name: "fmt", Type: types.String}),
	})
}

func tableTable() *types.Table {
	return simpleTable(map[string]types.Type{
		"insert":   variadicFn(types.Nil),
		"remove":   variadicFn(types.Any),
		"concat":   variadicFn(types.String),
		"sort":     variadicFn(types.Nil),
		"clone":    fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}),
		"freeze":   fn(types.Any, types.FuncParam{Name: "t", Type: types.Any}),
		"isfrozen": fn(types.Boolean, types.FuncParam{Name: "t", Type: types.Any}),
		"getn":     fn(types.Number, types.FuncParam{Name: "t", Type: types.Any}),
		"find":     variadicFn(types.Any),
		"move":     variadicFn(types.Any),
		"pack":     variadicFn(types.Any),
		"unpack":   variadicFn(types.Any),
	})
}

func taskTable() *types.Table {
	return simpleTable(map[string]types.Type{
		"wait":          variadicFn(types.Number),
		"spawn":         variadicFn(types.Any),
		"delay":         variadicFn(types.Any),
		"defer":         variadicFn(types.Any),
		"cancel":        fn(types.Nil, types.FuncParam{Name: "thread", Type: types.Thread}),
		"synchronize":   fn(types.Nil),
		"desynchronize": fn(types.Nil),
	})
}

func osTable() *types.Table {
	return simpleTable(map[string]types.Type{
		"time":     variadicFn(types.Number),
		"date":     variadicFn(types.Any),
		"clock":    fn(types.Number),
		"difftime": fn(types.Number, types.FuncParam{Name: "t2", Type: types.Number}, types.FuncParam{Name: "t1", Type: types.Number}),
	})
}

// populateRobloxDatatypes seeds the Roblox datatype constructors (Vector2/3,
// CFrame, Color3, ...) as global constructor functions returning a
// structural table shaped like the datatype. This is a minimal demo set;
// the full table of Roblox value types is the type universe's job.
func (e *Environment) populateRobloxDatatypes() {
	vector3 := vectorLikeTable("X", "Y", "Z")
	e.defineGlobal("Vector3", simpleTable(map[string]types.Type{
		"new": fn(vector3, types.FuncParam{Name: "x", Type: types.Number, Optional: true}, types.FuncParam{Name: "y", Type: types.Number, Optional: true}, types.FuncParam{Name: "z", Type: types.Number, Optional: true}),
	}))
	vector2 := vectorLikeTable("X", "Y")
	e.defineGlobal("Vector2", simpleTable(map[string]types.Type{
		"new": fn(vector2, types.FuncParam{Name: "x", Type: types.Number, Optional: true}, types.FuncParam{Name: "y", Type: types.Number, Optional: true}),
	}))
	cframe := types.NewTable()
	cframe.Set("Position", types.Property{Type: vector3})
	cframe.Set("X", types.Property{Type: types.Number})
	cframe.Set("Y", types.Property{Type: types.Number})
	cframe.Set("Z", types.Property{Type: types.Number})
	e.defineGlobal("CFrame", simpleTable(map[string]types.Type{
		"new": variadicFn(cframe),
	}))
	color3 := vectorLikeTable("R", "G", "B")
	e.defineGlobal("Color3", simpleTable(map[string]types.Type{
		"new":          fn(color3, types.FuncParam{Name: "r", Type: types.Number, Optional: true}, types.FuncParam{Name: "g", Type: types.Number, Optional: true}, types.FuncParam{Name: "b", Type: types.Number, Optional: true}),
		"fromRGB":      variadicFn(color3),
		"fromHSV":      variadicFn(color3),
		"fromHex":      fn(color3, types.FuncParam{Name: "hex", Type: types.String}),
	}))
	udim := vectorLikeTable("Scale", "Offset")
	e.defineGlobal("UDim", simpleTable(map[string]types.Type{
		"new": fn(udim, types.FuncParam{Name: "scale", Type: types.Number, Optional: true}, types.FuncParam{Name: "offset", Type: types.Number, Optional: true}),
	}))
	udim2 := types.NewTable()
	udim2.Set("X", types.Property{Type: udim})
	udim2.Set("Y", types.Property{Type: udim})
	e.defineGlobal("UDim2", simpleTable(map[string]types.Type{
		"new":        variadicFn(udim2),
		"fromScale":  variadicFn(udim2),
		"fromOffset": variadicFn(udim2),
	}))

	e.defineGlobal("vector", simpleTable(map[string]types.Type{
		"create": fn(vector3, types.FuncParam{Name: "x", Type: types.Number}, types.FuncParam{Name: "y", Type: types.Number}, types.FuncParam{Name: "z", Type: types.Number}),
	}))
}

func vectorLikeTable(fields ...string) *types.Table {
	t := types.NewTable()
	for _, f := range fields {
		t.Set(f, types.Property{Type: types.Number})
	}
	return t
}

// populateExecutorExtensions seeds the executor-extension bundle
// (crypt/syn/getgenv/filesystem/clipboard/console/mouse/keyboard/http) as a
// handful of loosely-typed globals; these are not part of standard Luau and
// exist purely as an opt-in bundle the caller may enable.
func (e *Environment) populateExecutorExtensions() {
	e.defineGlobal("getgenv", fn(types.Any))
	e.defineGlobal("hookfunction", variadicFn(types.Any))
	e.defineGlobal("crypt", simpleTable(map[string]types.Type{
		"base64encode": fn(types.String, types.FuncParam{Name: "s", Type: types.String}),
		"base64decode": fn(types.String, types.FuncParam{Name: "s", Type: types.String}),
	}))
	e.defineGlobal("syn", simpleTable(map[string]types.Type{
		"request": variadicFn(types.Any),
	}))
	e.defineGlobal("readfile", fn(types.String, types.FuncParam{Name: "path", Type: types.String}))
	e.defineGlobal("writefile", fn(types.Nil, types.FuncParam{Name: "path", Type: types.String}, types.FuncParam{Name: "data", Type: types.String}))
	e.defineGlobal("setclipboard", fn(types.Nil, types.FuncParam{Name: "data", Type: types.String}))
	e.defineGlobal("rconsoleprint", variadicFn(types.Nil))
	e.defineGlobal("mousemoveabs", fn(types.Nil, types.FuncParam{Name: "x", Type: types.Number}, types.FuncParam{Name: "y", Type: types.Number}))
	e.defineGlobal("keypress", fn(types.Nil, types.FuncParam{Name: "key", Type: types.Number}))
	e.defineGlobal("request", variadicFn(types.Any))
}
