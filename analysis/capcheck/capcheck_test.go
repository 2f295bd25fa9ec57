package capcheck_test

import (
	"testing"

	"github.com/rawbytedev/fixedstring/analysis/capcheck"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), capcheck.Analyzer, "a")
}
