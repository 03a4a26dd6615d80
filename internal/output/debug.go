package output

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DebugLevel controls how much diagnostic output is printed.
type DebugLevel int

const (
	DebugNone DebugLevel = iota
	DebugBrief
	DebugDetailed
	DebugFull
)

var debugLevelNames = []string{"none", "brief", "detailed", "full"}

func (l DebugLevel) String() string {
	if l < DebugNone || int(l) >= len(debugLevelNames) {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return debugLevelNames[l]
}

// Title returns the level name for display, e.g. "Detailed".
func (l DebugLevel) Title() string {
	return cases.Title(language.English).String(l.String())
}

// ParseDebugLevel accepts a level name in any case or its number (0-3).
func ParseDebugLevel(s string) (DebugLevel, bool) {
	s = cases.Fold().String(strings.TrimSpace(s))
	for i, name := range debugLevelNames {
		if s == name {
			return DebugLevel(i), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(debugLevelNames) {
		return DebugLevel(n), true
	}
	return DebugNone, false
}

// DebugLevelNames returns the valid level names in increasing detail.
func DebugLevelNames() []string {
	names := make([]string, len(debugLevelNames))
	copy(names, debugLevelNames)
	return names
}
