package fsnap_test

import (
	"fmt"
	"time"

	"github.com/electron-utils/fsnap"
)

func ExampleDiff() {
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dir := fsnap.Metadata{IsDir: true, ModTime: mod}
	file := fsnap.Metadata{IsFile: true, ModTime: mod}

	before := fsnap.NewSnapshot(
		fsnap.Entry{Path: "src", Meta: dir},
		fsnap.Entry{Path: "src/app.js", Meta: file},
		fsnap.Entry{Path: "old", Meta: dir},
		fsnap.Entry{Path: "old/a.js", Meta: file},
		fsnap.Entry{Path: "old/b.js", Meta: file},
	)
	edited := file
	edited.ModTime = mod.Add(time.Second)
	after := fsnap.NewSnapshot(
		fsnap.Entry{Path: "src", Meta: dir},
		fsnap.Entry{Path: "src/app.js", Meta: edited},
		fsnap.Entry{Path: "src/new.js", Meta: file},
	)

	raw := fsnap.Diff(before, after)
	fmt.Println("deletes:", raw.Deletes)
	fmt.Println("creates:", raw.Creates)
	fmt.Println("changes:", raw.Changes)

	simple := fsnap.Simplify(raw)
	fmt.Println("simplified deletes:", simple.Deletes)

	// Output:
	// deletes: [old old/a.js old/b.js]
	// creates: [src/new.js]
	// changes: [src/app.js]
	// simplified deletes: [old]
}
