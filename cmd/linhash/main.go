// linhash exercises LinHashMap with N sequential int keys, then prints
// the per-chain layout and access-counter totals.
//
// Run: go run ./cmd/linhash [N]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"IndexKit/internal/cliview"
	"IndexKit/internal/hashkey"
	"IndexKit/linhash"
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

	m := linhash.New[int, int](11, func(a, b int) bool { return a == b }, hashkey.Int[int]())

	for i := 0; i < n; i++ {
		m.Put(i, i*i)
	}

	cache, err := cliview.New(func(k int) (int, bool) { return m.Get(k) })
	if err != nil {
		log.Fatalf("new cache: %v", err)
	}
	defer cache.Close()

	m.ResetAccessCount()
	for i := 0; i < n; i += 5 {
		cache.Get(i)
		cache.Get(i)
	}

	fmt.Println(m.String())
	fmt.Printf("inserted:      %s keys\n", humanize.Comma(int64(n)))
	fmt.Printf("access count:  %s bucket visits\n", humanize.Comma(m.AccessCount()))
	fmt.Printf("cache hits:    %s, misses: %s\n", humanize.Comma(int64(cache.Hits())), humanize.Comma(int64(cache.Misses())))
}
