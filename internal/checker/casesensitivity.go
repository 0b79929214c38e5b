package checker

import "strings"

// canonicalNames is the fixed lowercase -> canonical spelling table behind
// W002. It is a deliberately static heuristic over well-known Roblox API
// surface (Open Question 3: "a documented limitation, not a bug to fix by
// guessing"), not a dynamic consultation of whatever class table is in use.
var canonicalNames = map[string]string{
	"getchildren":             "GetChildren",
	"getdescendants":          "GetDescendants",
	"findfirstchild":          "FindFirstChild",
	"findfirstchildofclass":   "FindFirstChildOfClass",
	"findfirstchildwhichisa":  "FindFirstChildWhichIsA",
	"findfirstancestor":       "FindFirstAncestor",
	"findfirstancestorofclass": "FindFirstAncestorOfClass",
	"findfirstancestorwhichisa": "FindFirstAncestorWhichIsA",
	"waitforchild":            "WaitForChild",
	"isa":                     "IsA",
	"isdescendantof":          "IsDescendantOf",
	"isancestorof":            "IsAncestorOf",
	"clone":                   "Clone",
	"destroy":                 "Destroy",
	"getservice":              "GetService",
	"getmass":                 "GetMass",
	"getboundingbox":          "GetBoundingBox",
	"getplayers":              "GetPlayers",
	"connect":                 "Connect",
	"disconnect":              "Disconnect",
	"wait":                    "Wait",
	"once":                    "Once",

	"name":        "Name",
	"classname":   "ClassName",
	"parent":      "Parent",
	"position":    "Position",
	"size":        "Size",
	"cframe":      "CFrame",
	"anchored":    "Anchored",
	"transparency": "Transparency",
	"brickcolor":  "BrickColor",
	"health":      "Health",
	"walkspeed":   "WalkSpeed",
	"userid":      "UserId",
	"character":   "Character",
	"gravity":     "Gravity",

	"changed":      "Changed",
	"childadded":   "ChildAdded",
	"childremoved": "ChildRemoved",
	"touched":      "Touched",
	"died":         "Died",
	"playeradded":  "PlayerAdded",
	"heartbeat":    "Heartbeat",
	"stepped":      "Stepped",
}

// suggestCanonical returns the canonical spelling for name's lowercase form
// if one is registered and differs from name itself.
func suggestCanonical(name string) (string, bool) {
	canon, ok := canonicalNames[strings.ToLower(name)]
	if !ok || canon == name {
		return "", false
	}
	return canon, true
}
