// Command fixedstringvet reports constant strings that overflow the
// capacity of a fixedstring.String.
//
//	go vet -vettool=$(which fixedstringvet) ./...
package main

import (
	"github.com/rawbytedev/fixedstring/analysis/capcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(capcheck.Analyzer)
}
