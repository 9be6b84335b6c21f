package cleanup

import "sort"

// ResolveOrphans returns every uploaded filename that appears in no database
// reference. Pure set difference, no I/O; the result is sorted so logs,
// previews and tests are deterministic.
func ResolveOrphans(uploaded, referenced map[string]struct{}) []string {
	orphans := make([]string, 0, len(uploaded))
	for name := range uploaded {
		if _, ok := referenced[name]; !ok {
			orphans = append(orphans, name)
		}
	}

	sort.Strings(orphans)
	return orphans
}
