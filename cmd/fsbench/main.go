// Command fsbench prints a YAML report of the time and allocations spent in
// each fixedstring entry point.
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/rawbytedev/fixedstring/internal/bench"
)

func main() {
	cfg, err := bench.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}
	if err := bench.Run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
