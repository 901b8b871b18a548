// exthash exercises ExtHashMap with N sequential int keys, then prints
// the directory/bucket layout and access-counter totals.
//
// Run: go run ./cmd/exthash [N]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"IndexKit/exthash"
	"IndexKit/internal/cliview"
	"IndexKit/internal/hashkey"
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

	m := exthash.New[int, int](4, func(a, b int) bool { return a == b }, hashkey.Int[int]())

	for i := 0; i < n; i++ {
		if err := m.Put(i, i*i); err != nil {
			log.Fatalf("put(%d): %v", i, err)
		}
	}

	cache, err := cliview.New(func(k int) (int, bool) { return m.Get(k) })
	if err != nil {
		log.Fatalf("new cache: %v", err)
	}
	defer cache.Close()

	m.ResetAccessCount()
	for i := 0; i < n; i += 3 {
		cache.Get(i)
		cache.Get(i) // repeat to exercise the cache hit path
	}

	fmt.Println(m.String())
	fmt.Printf("inserted:      %s keys\n", humanize.Comma(int64(n)))
	fmt.Printf("access count:  %s bucket lookups\n", humanize.Comma(m.AccessCount()))
	fmt.Printf("cache hits:    %s, misses: %s\n", humanize.Comma(int64(cache.Hits())), humanize.Comma(int64(cache.Misses())))
}
