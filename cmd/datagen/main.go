/*
 * MIT License
 *
 * Copyright (c) 2026 corvid contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command datagen drives the self-play training-data generator
// (datagen.Generator), writing Marlinformat-encoded games to a single
// output file from several workers in parallel - a Go rendering of
// original_source/src/datagen.cpp's datagen()/datagen_thread() thread
// fan-out.
package main

import (
	"flag"
	"log"
	"os"
	"sync"

	"github.com/corvidchess/corvid/datagen"
)

func main() {
	threads := flag.Int("threads", 1, "number of self-play workers to run concurrently")
	games := flag.Int("games", 1, "total number of games to play across all workers")
	out := flag.String("out", "datagen.viri", "output file for the recorded games")
	hashMB := flag.Int("hash", 16, "transposition table size per worker, in megabytes")
	seed := flag.Int64("seed", 1, "base RNG seed - worker i is seeded with seed+i")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("datagen: %v", err)
	}
	defer f.Close()

	var mu sync.Mutex
	var wg sync.WaitGroup

	perWorker := *games / *threads
	extra := *games % *threads
	for i := 0; i < *threads; i++ {
		count := perWorker
		if i < extra {
			count++
		}
		wg.Add(1)
		go func(workerID, count int) {
			defer wg.Done()
			g := datagen.NewGenerator(*hashMB, *seed+int64(workerID))
			for n := 0; n < count; n++ {
				game := g.PlayGame()

				mu.Lock()
				err := game.WriteTo(f)
				mu.Unlock()

				if err != nil {
					log.Printf("datagen: worker %d: write game %d: %v", workerID, n, err)
					return
				}
			}
		}(i, count)
	}

	wg.Wait()
}
