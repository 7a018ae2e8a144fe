package fsnap

// Delta classifies the paths that differ between two snapshots. A path sits
// in at most one sequence, except that a path which switched between file and
// directory is listed in both Deletes and Creates.
type Delta struct {
	Deletes []string `json:"deletes" yaml:"deletes"`
	Creates []string `json:"creates" yaml:"creates"`
	Changes []string `json:"changes" yaml:"changes"`
}

// Empty reports whether the delta holds no entries.
func (d Delta) Empty() bool {
	return d.Len() == 0
}

// Len returns the total number of entries across all sequences.
func (d Delta) Len() int {
	return len(d.Deletes) + len(d.Creates) + len(d.Changes)
}

// Diff compares snapshot a (before) with snapshot b (after).
//
// Entries from a are visited first in a's order, then entries only present in
// b in b's order. Directories never count as changed; a file counts as changed
// when its modification time differs.
func Diff(a, b *Snapshot) Delta {
	d := Delta{
		Deletes: []string{},
		Creates: []string{},
		Changes: []string{},
	}

	var switched []string
	a.Each(func(p string, before Metadata) {
		after, ok := b.Get(p)
		switch {
		case !ok:
			d.Deletes = append(d.Deletes, p)
		case before.IsDir != after.IsDir:
			d.Deletes = append(d.Deletes, p)
			switched = append(switched, p)
		case before.IsFile && !before.ModTime.Equal(after.ModTime):
			d.Changes = append(d.Changes, p)
		}
	})
	d.Creates = append(d.Creates, switched...)

	b.Each(func(p string, _ Metadata) {
		if !a.Has(p) {
			d.Creates = append(d.Creates, p)
		}
	})

	return d
}
