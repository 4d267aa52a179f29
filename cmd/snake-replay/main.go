// Command snake-replay summarises parquet recordings written with -record.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"snake/internal/replay"
)

func main() {
	verbose := flag.Bool("v", false, "print one line per tick")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] recording.parquet...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var all []replay.TickRow
	for _, path := range flag.Args() {
		rows, err := replay.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		if *verbose {
			for _, r := range rows {
				fmt.Printf("%s %6d head=(%d,%d) apple=(%d,%d) %-5s tail=%d score=%d high=%d ate=%t collided=%t\n",
					r.SessionID, r.Tick, r.HeadX, r.HeadY, r.AppleX, r.AppleY, r.Heading,
					r.TailLength, r.Score, r.HighScore, r.Ate, r.Collided)
			}
		}
		all = append(all, rows...)
	}

	s := replay.Summarize(all)
	fmt.Printf("sessions:    %d\n", s.Sessions)
	fmt.Printf("ticks:       %d\n", s.Ticks)
	fmt.Printf("apples:      %d\n", s.Apples)
	fmt.Printf("collisions:  %d\n", s.Collisions)
	fmt.Printf("max score:   %d\n", s.MaxScore)
	fmt.Printf("high score:  %d\n", s.HighScore)
	fmt.Printf("longest run: %d ticks\n", s.LongestRun)
}
