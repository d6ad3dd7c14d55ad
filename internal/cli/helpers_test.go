package cli

import (
	"os"
	"testing"
)

// resetFlags restores every global flag to its zero value
func resetFlags() {
	configFlag = ""
	dirFlag = ""
	logLevelFlag = ""
	formatFlag = ""
	colorFlag = ""
	dryRunFlag = false
	metricsFileFlag = ""
	remoteNameFlag = ""
	remoteURLFlag = ""
	dataFolderFlag = ""
	forceFlag = false
}

// chdir switches to dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
}
