package compose

import "strings"

// The cap_drop directive and the annotated forms it is rewritten to on a
// first run. The annotation doubles as the marker a later run scans for when
// restoring the directive.
const (
	capDropKey   = "cap_drop:"
	capDropValue = "- ALL"

	commentSuffix       = " # Temporarily commented out for first run"
	commentedCapDropKey = "# " + capDropKey + commentSuffix
	commentedCapDropVal = "# " + capDropValue + commentSuffix
)

// ToggleHardening reconciles the cap_drop directive of one service with the
// detected first-run state. On a first run the active key/value pair inside
// the service block is commented out (cap_drop: ALL would block the
// container's one-time initialization). Once the service has initialized,
// any previously commented pair is restored.
//
// Returns true when lines were modified; the desired state already holding
// is a no-op in both directions.
func ToggleHardening(lines []string, serviceMarker string, firstRun bool) bool {
	if firstRun {
		return disableHardening(lines, serviceMarker)
	}
	return restoreHardening(lines)
}

func disableHardening(lines []string, serviceMarker string) bool {
	blk, ok := ServiceBlock(lines, serviceMarker)
	if !ok {
		return false
	}

	keyIdx, valIdx := -1, -1
	for i := blk.Start + 1; i < blk.End; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(lines[i], capDropKey) {
			keyIdx = i
		} else if keyIdx != -1 && strings.Contains(lines[i], capDropValue) {
			valIdx = i
			break
		}
	}
	if keyIdx == -1 || valIdx == -1 {
		return false
	}

	lines[keyIdx] = strings.Replace(lines[keyIdx], capDropKey, commentedCapDropKey, 1)
	lines[valIdx] = strings.Replace(lines[valIdx], capDropValue, commentedCapDropVal, 1)
	return true
}

// restoreHardening scans the whole file rather than one service block: the
// annotated comment strings are unique, and this mirrors the asymmetry of
// the behavior it reproduces.
func restoreHardening(lines []string) bool {
	changed := false
	for i, line := range lines {
		if strings.Contains(line, commentedCapDropKey) {
			lines[i] = strings.Replace(line, commentedCapDropKey, capDropKey, 1)
			changed = true
		} else if strings.Contains(line, commentedCapDropVal) {
			lines[i] = strings.Replace(line, commentedCapDropVal, capDropValue, 1)
			changed = true
		}
	}
	return changed
}
