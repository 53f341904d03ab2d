// Package device answers the questions the manager has about the machine:
// is there an accelerator, how do we hand memory back after a release, and
// is another process already driving the device.
package device

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// EnvAccelerator overrides accelerator detection when set to a boolean.
const EnvAccelerator = "GENHOST_ACCELERATOR"

type signals struct {
	lookupEnv func(string) (string, bool)
	exists    func(string) bool
	lookPath  func(string) (string, error)
}

var hostSignals = signals{
	lookupEnv: os.LookupEnv,
	exists: func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	},
	lookPath: exec.LookPath,
}

// DetectAccelerator reports whether a CUDA-class accelerator is usable.
func DetectAccelerator() bool { return hostSignals.detect() }

func (p signals) detect() bool {
	if v, ok := p.lookupEnv(EnvAccelerator); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	if v, ok := p.lookupEnv("CUDA_VISIBLE_DEVICES"); ok {
		v = strings.TrimSpace(v)
		if v == "" || v == "-1" {
			return false
		}
	}
	if p.exists("/dev/nvidia0") {
		return true
	}
	_, err := p.lookPath("nvidia-smi")
	return err == nil
}
