// bptree exercises BPlusTreeMap with N sequential int keys, then prints
// the tree's shape and access-counter totals.
//
// Run: go run ./cmd/bptree [N]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"IndexKit/bplustree"
)

func main() {
	n := 1000
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("parse N: %v", err)
		}
		n = parsed
	}

	tree := bplustree.New[int, int](func(a, b int) bool { return a < b })

	for i := 0; i < n; i++ {
		if err := tree.Put(i, i*i); err != nil {
			log.Fatalf("put(%d): %v", i, err)
		}
	}

	tree.ResetAccessCount()
	gets, hits := 0, 0
	for i := 0; i < n; i += 7 {
		gets++
		if _, ok := tree.Get(i); ok {
			hits++
		}
	}

	fmt.Println(tree.String())
	fmt.Printf("inserted:     %s keys\n", humanize.Comma(int64(n)))
	fmt.Printf("sampled gets: %s (hits: %s)\n", humanize.Comma(int64(gets)), humanize.Comma(int64(hits)))
	fmt.Printf("access count: %s node visits\n", humanize.Comma(tree.AccessCount()))
}
